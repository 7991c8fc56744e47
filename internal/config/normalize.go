package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeFormat(); err != nil {
		return err
	}
	c.normalizeNotifications()
	return c.normalizeLogging()
}

func (c *Config) normalizeFormat() error {
	value, ok := os.LookupEnv(envIncludeBrackets)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%s: %w", envIncludeBrackets, err)
	}
	c.Format.IncludeBrackets = parsed
	return nil
}

func (c *Config) normalizeNotifications() {
	c.Notifications.Style = strings.ToLower(strings.TrimSpace(c.Notifications.Style))
	if c.Notifications.Style == "" {
		c.Notifications.Style = defaultNotificationStyle
	}
	c.Notifications.Color = strings.ToLower(strings.TrimSpace(c.Notifications.Color))
	if c.Notifications.Color == "" {
		c.Notifications.Color = defaultNotificationColor
	}
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if strings.TrimSpace(c.Logging.File) == "" {
		c.Logging.File = ""
		return nil
	}
	expanded, err := expandPath(strings.TrimSpace(c.Logging.File))
	if err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	c.Logging.File = expanded
	return nil
}
