// Package workbench wires the formatter to its user-facing collaborators.
//
// It reproduces the three actions of the interactive formatter (format, copy,
// clear) over immutable State values: every action takes the current state
// and returns the next one, reporting progress through a notifications.Sink
// and copying through a clipboard.Writer. Notification delivery problems are
// logged and never change an action's outcome.
package workbench
