package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"quotefmt/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a per-test log file, plain toasts,
// and the clipboard disabled so tests never touch the real system clipboard.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Clipboard.Enabled = false
	cfgVal.Notifications.Color = config.ColorNever
	cfgVal.Logging.Level = "info"
	cfgVal.Logging.File = filepath.Join(base, "logs", "quotefmt.log")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithBrackets sets the default bracket option.
func WithBrackets(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Format.IncludeBrackets = enabled
	}
}

// WithNotificationsDisabled turns off all user-facing notifications.
func WithNotificationsDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Notifications.Enabled = false
	}
}

// WriteConfig encodes cfg as TOML at path, creating parent directories.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config %s: %v", path, err)
	}
}

// LogPath returns the log file configured by NewConfig.
func LogPath(cfg *config.Config) string {
	return cfg.Logging.File
}

// WithAutoCopy enables the clipboard and copies every formatted result.
func WithAutoCopy() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Clipboard.Enabled = true
		b.cfg.Clipboard.AutoCopy = true
	}
}
