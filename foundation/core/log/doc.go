// Package log provides structured logging for the Lox front end.
//
// Package: log
// Title: Lox Structured Logging
// Description: Leveled logging with JSON, text, console and logfmt output,
//              persistent fields, session tagging, stage timers and
//              severity-aware logging of coded errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Reduced to what a command line front end needs
//
// Usage:
//   import loxlog "github.com/msto63/lox/foundation/core/log"
//
//   logger := loxlog.New().
//     WithLevel(loxlog.LevelDebug).
//     WithFormat(loxlog.FormatJSON).
//     WithSessionID(id)
//
//   logger.Debug("scan finished", loxlog.Fields{"tokens": 12})
//
//   timer := logger.StartTimer("parse")
//   // ... parse
//   timer.Stop()
//
//   logger.LogError(err)
package log
