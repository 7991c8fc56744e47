package notifications_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quotefmt/internal/config"
	"quotefmt/internal/logging"
	"quotefmt/internal/notifications"
)

func TestNewSinkReturnsNoopWhenDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Notifications.Enabled = false
	var buf bytes.Buffer

	sink := notifications.NewSink(&cfg, &buf, logging.NewNop())
	if err := sink.NotifySuccess(context.Background(), "Fields cleared"); err != nil {
		t.Fatalf("expected noop sink to return nil, got %v", err)
	}
	if err := sink.NotifyError(context.Background(), "Nothing to copy"); err != nil {
		t.Fatalf("expected noop sink to return nil, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestToastSinkFormatsMessages(t *testing.T) {
	tests := []struct {
		name   string
		color  string
		notify func(notifications.Sink) error
		want   string
	}{
		{
			name:   "success plain",
			color:  config.ColorNever,
			notify: func(s notifications.Sink) error { return s.NotifySuccess(context.Background(), "Copied to clipboard!") },
			want:   "✔ Copied to clipboard!\n",
		},
		{
			name:   "error plain",
			color:  config.ColorAuto,
			notify: func(s notifications.Sink) error { return s.NotifyError(context.Background(), " Nothing to copy ") },
			want:   "✖ Nothing to copy\n",
		},
		{
			name:   "success colored",
			color:  config.ColorAlways,
			notify: func(s notifications.Sink) error { return s.NotifySuccess(context.Background(), "Fields cleared") },
			want:   "\x1b[32m✔\x1b[0m Fields cleared\n",
		},
		{
			name:   "error colored",
			color:  config.ColorAlways,
			notify: func(s notifications.Sink) error { return s.NotifyError(context.Background(), "Failed to copy to clipboard") },
			want:   "\x1b[31m✖\x1b[0m Failed to copy to clipboard\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Notifications.Color = tc.color
			var buf bytes.Buffer
			sink := notifications.NewSink(&cfg, &buf, logging.NewNop())
			if err := tc.notify(sink); err != nil {
				t.Fatalf("notify returned error: %v", err)
			}
			if buf.String() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, buf.String())
			}
		})
	}
}

func TestSinkSuppressesDisabledKinds(t *testing.T) {
	cfg := config.Default()
	cfg.Notifications.Color = config.ColorNever
	cfg.Notifications.Success = false
	var buf bytes.Buffer

	sink := notifications.NewSink(&cfg, &buf, logging.NewNop())
	if err := sink.NotifySuccess(context.Background(), "Formatted 2 unique strings"); err != nil {
		t.Fatalf("NotifySuccess: %v", err)
	}
	if err := sink.NotifyError(context.Background(), "Please enter some text to format"); err != nil {
		t.Fatalf("NotifyError: %v", err)
	}
	if got := buf.String(); got != "✖ Please enter some text to format\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestLogSinkRoutesThroughLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "notify.log")
	logger, err := logging.New(logging.Options{Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	cfg := config.Default()
	cfg.Notifications.Style = config.StyleLog
	var buf bytes.Buffer

	sink := notifications.NewSink(&cfg, &buf, logger)
	if err := sink.NotifySuccess(context.Background(), "Fields cleared"); err != nil {
		t.Fatalf("NotifySuccess: %v", err)
	}
	if err := sink.NotifyError(context.Background(), "Nothing to copy"); err != nil {
		t.Fatalf("NotifyError: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("log style must not write toasts, got %q", buf.String())
	}
	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{"INFO notifications: Fields cleared kind=success", "WARN notifications: Nothing to copy kind=error"} {
		if !strings.Contains(string(content), want) {
			t.Fatalf("expected %q in %q", want, content)
		}
	}
}

func TestToastHonoursCancelledContext(t *testing.T) {
	var buf bytes.Buffer
	toast := notifications.NewToast(&buf, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := toast.NotifySuccess(ctx, "late"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestToastReportsWriteErrors(t *testing.T) {
	toast := notifications.NewToast(failingWriter{}, false)
	err := toast.NotifyError(context.Background(), "x")
	if err == nil || !strings.Contains(err.Error(), "write toast") {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
}
