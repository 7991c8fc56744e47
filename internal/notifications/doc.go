// Package notifications delivers short user-facing status messages.
//
// The default implementation prints toast-style lines to the terminal,
// coloured when the destination is a TTY, and gracefully degrades to a no-op
// when notifications are disabled. A log-backed variant routes the same
// messages through the structured logger instead.
//
// Callers depend only on the Sink interface; the formatting core never talks
// to this package directly.
package notifications
