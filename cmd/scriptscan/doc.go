// Package main hosts the scriptscan CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration, sets up
// structured logging, and runs the missing-script scan over a Unity
// project tree. Findings go to stdout in the configured format; logs go
// to stderr. Keep this package lean: behavior lives in the internal
// packages and is only surfaced through commands and flags here.
package main
