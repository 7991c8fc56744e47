// Package config loads, normalizes, and validates quotefmt configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// QUOTEFMT_LOG_LEVEL. The Config type centralizes the formatting defaults,
// clipboard and notification behaviour, and logging settings the CLI needs.
//
// Always obtain settings through this package so downstream code receives
// canonical values and clear validation errors.
package config
