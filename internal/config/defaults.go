package config

// Notification styles and color modes accepted by the [notifications] section.
const (
	StyleToast  = "toast"
	StyleLog    = "log"
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	defaultConfigPath        = "~/.config/quotefmt/config.toml"
	projectConfigName        = "quotefmt.toml"
	defaultLogFormat         = "console"
	defaultLogLevel          = "warn"
	defaultNotificationStyle = StyleToast
	defaultNotificationColor = ColorAuto
	envLogLevel              = "QUOTEFMT_LOG_LEVEL"
	envIncludeBrackets       = "QUOTEFMT_INCLUDE_BRACKETS"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Clipboard: Clipboard{
			Enabled: true,
		},
		Notifications: Notifications{
			Enabled: true,
			Style:   defaultNotificationStyle,
			Color:   defaultNotificationColor,
			Success: true,
			Errors:  true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
