// Package main hosts the quotefmt CLI entrypoint and command graph.
//
// The Cobra-based command tree reads text from arguments, a file, or stdin,
// runs it through the formatter, and prints the quoted list. It centralizes
// configuration resolution, structured logging setup, and the wiring of
// notifications and clipboard access so subcommands can focus on user
// experience instead of plumbing.
//
// Keep this package lean: add new behaviour to the internal packages first,
// then surface it through dedicated commands or flags here.
package main
