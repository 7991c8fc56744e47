package clipboard

import (
	"context"
	"errors"
	"testing"
)

func newFakeSystem(unsupported bool, writeErr error, got *string) *System {
	return &System{
		unsupported: func() bool { return unsupported },
		writeAll: func(text string) error {
			if writeErr != nil {
				return writeErr
			}
			*got = text
			return nil
		},
	}
}

func TestSystemWrite(t *testing.T) {
	var got string
	sys := newFakeSystem(false, nil, &got)
	if err := sys.Write(context.Background(), "'a', 'b'"); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if got != "'a', 'b'" {
		t.Fatalf("unexpected clipboard contents %q", got)
	}
}

func TestSystemWriteErrors(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	boom := errors.New("xclip: exit status 1")

	tests := []struct {
		name        string
		ctx         context.Context
		unsupported bool
		writeErr    error
		want        error
	}{
		{"unsupported", context.Background(), true, nil, ErrUnsupported},
		{"write failure", context.Background(), false, boom, boom},
		{"cancelled", cancelled, false, nil, context.Canceled},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			err := newFakeSystem(tc.unsupported, tc.writeErr, &got).Write(tc.ctx, "x")
			var ioErr *IoError
			if !errors.As(err, &ioErr) {
				t.Fatalf("expected *IoError, got %T (%v)", err, err)
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if got != "" {
				t.Fatalf("clipboard must stay untouched, got %q", got)
			}
		})
	}
}

func TestDisabled(t *testing.T) {
	err := Disabled().Write(context.Background(), "x")
	if !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	if err.Error() != "clipboard write: clipboard disabled" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
