package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateClipboard(); err != nil {
		return err
	}
	if err := c.validateNotifications(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateClipboard() error {
	if c.Clipboard.AutoCopy && !c.Clipboard.Enabled {
		return errors.New("clipboard.auto_copy requires clipboard.enabled")
	}
	return nil
}

func (c *Config) validateNotifications() error {
	switch c.Notifications.Style {
	case StyleToast, StyleLog:
	default:
		return fmt.Errorf("notifications.style: unsupported value %q (want toast or log)", c.Notifications.Style)
	}
	switch c.Notifications.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("notifications.color: unsupported value %q (want auto, always or never)", c.Notifications.Color)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
