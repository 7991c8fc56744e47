package workbench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"quotefmt/internal/clipboard"
	"quotefmt/internal/formatter"
	"quotefmt/internal/logging"
	"quotefmt/internal/notifications"
	"quotefmt/internal/textutil"
)

// User-facing messages.
const (
	MsgEmptyInput    = "Please enter some text to format"
	MsgNothingToCopy = "Nothing to copy"
	MsgCopied        = "Copied to clipboard!"
	MsgCopyFailed    = "Failed to copy to clipboard"
	MsgCleared       = "Fields cleared"
)

// ErrNothingToCopy is returned by Copy when the state has no output.
var ErrNothingToCopy = errors.New("nothing to copy")

// State is a snapshot of the input, the latest output, and the bracket toggle.
type State struct {
	Input           string `json:"input"`
	Output          string `json:"output"`
	UniqueCount     int    `json:"unique_count"`
	IncludeBrackets bool   `json:"include_brackets"`
}

// Option customizes a Workbench.
type Option func(*Workbench)

// WithEscapeQuotes enables doubling of apostrophes inside tokens.
func WithEscapeQuotes(enabled bool) Option {
	return func(w *Workbench) { w.escapeQuotes = enabled }
}

// WithIDGenerator overrides how correlation IDs are produced.
func WithIDGenerator(fn func() string) Option {
	return func(w *Workbench) {
		if fn != nil {
			w.newID = fn
		}
	}
}

// Workbench runs user actions against the formatter.
type Workbench struct {
	sink         notifications.Sink
	clip         clipboard.Writer
	logger       *slog.Logger
	escapeQuotes bool
	newID        func() string
}

// New constructs a Workbench. Nil collaborators fall back to a silent sink, a
// disabled clipboard and a no-op logger.
func New(sink notifications.Sink, clip clipboard.Writer, logger *slog.Logger, opts ...Option) *Workbench {
	if sink == nil {
		sink = notifications.Nop()
	}
	if clip == nil {
		clip = clipboard.Disabled()
	}
	w := &Workbench{
		sink:   sink,
		clip:   clip,
		logger: logging.NewComponentLogger(logger, "workbench"),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Format formats st.Input and returns st with Output and UniqueCount replaced. On blank input
// the state is returned unchanged together with formatter.ErrEmptyInput.
func (w *Workbench) Format(ctx context.Context, st State) (State, error) {
	ctx, logger := w.begin(ctx, "format")

	res, err := formatter.Format(st.Input, formatter.Options{
		IncludeBrackets: st.IncludeBrackets,
		EscapeQuotes:    w.escapeQuotes,
	})
	if err != nil {
		logger.Debug("format rejected", logging.Error(err))
		w.notifyError(ctx, logger, MsgEmptyInput)
		return st, err
	}

	logger.Info("formatted input",
		logging.Int(logging.FieldUniqueCount, res.UniqueCount),
		logging.Bool("include_brackets", st.IncludeBrackets),
	)
	w.notifySuccess(ctx, logger, FormattedMessage(res.UniqueCount))

	next := st
	next.Output = res.Output
	next.UniqueCount = res.UniqueCount
	return next, nil
}

// Copy writes st.Output to the clipboard.
func (w *Workbench) Copy(ctx context.Context, st State) error {
	ctx, logger := w.begin(ctx, "copy")

	if st.Output == "" {
		w.notifyError(ctx, logger, MsgNothingToCopy)
		return ErrNothingToCopy
	}
	if err := w.clip.Write(ctx, st.Output); err != nil {
		logger.Warn("clipboard write failed", logging.Error(err))
		w.notifyError(ctx, logger, MsgCopyFailed)
		return fmt.Errorf("copy output: %w", err)
	}

	logger.Info("copied output", logging.Int("bytes", len(st.Output)))
	w.notifySuccess(ctx, logger, MsgCopied)
	return nil
}

// Clear empties input and output while keeping the bracket toggle.
func (w *Workbench) Clear(ctx context.Context, st State) State {
	ctx, logger := w.begin(ctx, "clear")
	logger.Debug("cleared fields")
	w.notifySuccess(ctx, logger, MsgCleared)
	return State{IncludeBrackets: st.IncludeBrackets}
}

// FormattedMessage is the success message shown after formatting.
func FormattedMessage(uniqueCount int) string {
	return "Formatted " + textutil.CountNoun(uniqueCount, "unique string", "unique strings")
}

func (w *Workbench) begin(ctx context.Context, action string) (context.Context, *slog.Logger) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := logging.CorrelationIDFromContext(ctx); !ok {
		ctx = logging.WithCorrelationID(ctx, w.newID())
	}
	return ctx, logging.WithContext(ctx, w.logger).With(logging.String(logging.FieldAction, action))
}

func (w *Workbench) notifyError(ctx context.Context, logger *slog.Logger, message string) {
	if err := w.sink.NotifyError(ctx, message); err != nil {
		logger.Warn("notification delivery failed", logging.String("kind", "error"), logging.Error(err))
	}
}

func (w *Workbench) notifySuccess(ctx context.Context, logger *slog.Logger, message string) {
	if err := w.sink.NotifySuccess(ctx, message); err != nil {
		logger.Warn("notification delivery failed", logging.String("kind", "success"), logging.Error(err))
	}
}
