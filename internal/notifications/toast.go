package notifications

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"quotefmt/internal/config"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"

	successIcon = "✔"
	errorIcon   = "✖"
)

// Toast writes one line per notification, prefixed with a status icon.
type Toast struct {
	mu       sync.Mutex
	w        io.Writer
	colorize bool
}

// NewToast returns a toast sink writing to w. When colorize is true the icon
// is wrapped in ANSI colour codes.
func NewToast(w io.Writer, colorize bool) *Toast {
	return &Toast{w: w, colorize: colorize}
}

// NotifyError writes message as an error toast.
func (t *Toast) NotifyError(ctx context.Context, message string) error {
	return t.deliver(ctx, KindError, message)
}

// NotifySuccess writes message as a success toast.
func (t *Toast) NotifySuccess(ctx context.Context, message string) error {
	return t.deliver(ctx, KindSuccess, message)
}

func (t *Toast) deliver(ctx context.Context, kind Kind, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	icon, color := successIcon, ansiGreen
	if kind == KindError {
		icon, color = errorIcon, ansiRed
	}
	if t.colorize {
		icon = color + icon + ansiReset
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := fmt.Fprintf(t.w, "%s %s\n", icon, strings.TrimSpace(message)); err != nil {
		return fmt.Errorf("write toast: %w", err)
	}
	return nil
}

func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isTerminal(w)
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
