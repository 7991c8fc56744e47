package clipboard

import (
	"context"
	"errors"
	"fmt"

	atotto "github.com/atotto/clipboard"
)

var (
	// ErrUnsupported reports that no clipboard utility is available on this system.
	ErrUnsupported = errors.New("clipboard unsupported on this system")
	// ErrDisabled reports that clipboard access was turned off in configuration.
	ErrDisabled = errors.New("clipboard disabled")
)

// Writer copies text to a clipboard.
type Writer interface {
	Write(ctx context.Context, text string) error
}

// IoError wraps a failed clipboard operation.
type IoError struct {
	Op  string
	Err error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("clipboard %s: %v", e.Op, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// System writes to the operating system clipboard.
type System struct {
	unsupported func() bool
	writeAll    func(string) error
}

// NewSystem returns a writer backed by the platform clipboard.
func NewSystem() *System {
	return &System{
		unsupported: func() bool { return atotto.Unsupported },
		writeAll:    atotto.WriteAll,
	}
}

// Write replaces the clipboard contents with text.
func (s *System) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return &IoError{Op: "write", Err: err}
	}
	if s.unsupported() {
		return &IoError{Op: "write", Err: ErrUnsupported}
	}
	if err := s.writeAll(text); err != nil {
		return &IoError{Op: "write", Err: err}
	}
	return nil
}

type disabled struct{}

// Disabled returns a writer that always fails with ErrDisabled.
func Disabled() Writer { return disabled{} }

func (disabled) Write(context.Context, string) error {
	return &IoError{Op: "write", Err: ErrDisabled}
}
