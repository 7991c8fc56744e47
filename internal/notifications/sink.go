package notifications

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"quotefmt/internal/config"
	"quotefmt/internal/logging"
)

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Sink defines the notification surface exposed to callers of the formatter.
type Sink interface {
	NotifyError(ctx context.Context, message string) error
	NotifySuccess(ctx context.Context, message string) error
}

// NewSink builds the sink described by cfg. Toasts are written to w; when w is
// nil or notifications are disabled a noop implementation is returned.
func NewSink(cfg *config.Config, w io.Writer, logger *slog.Logger) Sink {
	if cfg == nil || !cfg.Notifications.Enabled {
		return noopSink{}
	}

	var base deliverer
	switch cfg.Notifications.Style {
	case config.StyleLog:
		base = &logSink{logger: logging.NewComponentLogger(logger, "notifications")}
	default:
		if w == nil {
			return noopSink{}
		}
		base = NewToast(w, colorEnabled(cfg.Notifications.Color, w))
	}

	return &filteredSink{
		next:    base,
		success: cfg.Notifications.Success,
		errors:  cfg.Notifications.Errors,
	}
}

type deliverer interface {
	deliver(ctx context.Context, kind Kind, message string) error
}

type filteredSink struct {
	next    deliverer
	success bool
	errors  bool
}

func (f *filteredSink) NotifyError(ctx context.Context, message string) error {
	if !f.errors {
		return nil
	}
	return f.next.deliver(ctx, KindError, message)
}

func (f *filteredSink) NotifySuccess(ctx context.Context, message string) error {
	if !f.success {
		return nil
	}
	return f.next.deliver(ctx, KindSuccess, message)
}

type logSink struct {
	logger *slog.Logger
}

func (l *logSink) deliver(ctx context.Context, kind Kind, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger := logging.WithContext(ctx, l.logger)
	message = strings.TrimSpace(message)
	if kind == KindError {
		logger.WarnContext(ctx, message, logging.String("kind", string(kind)))
		return nil
	}
	logger.InfoContext(ctx, message, logging.String("kind", string(kind)))
	return nil
}

// Nop returns a sink that discards every notification.
func Nop() Sink { return noopSink{} }

type noopSink struct{}

func (noopSink) NotifyError(context.Context, string) error   { return nil }
func (noopSink) NotifySuccess(context.Context, string) error { return nil }
