// ============================================================================
// lox - Lox expression front end
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from CLI settings
// Author:      msto63
// Created:     2025-12-06
// Modified:    2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"sync"

	loxlog "github.com/msto63/lox/foundation/core/log"
)

var (
	// Global FileWriter instance, shared by every logger of the process
	globalFileWriter *FileWriter
	fileWriterMu     sync.Mutex
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error, fatal, off)
	Level string

	// Output format (json, text, console, logfmt; default: text)
	Format string

	// Output writer (default: os.Stderr)
	Output io.Writer

	// LogFile, if set, additionally receives every entry in batches
	LogFile string

	// SessionID correlates all entries of one invocation
	SessionID string

	// EnableCaller adds file:line to entries
	EnableCaller bool

	// Additional outputs (besides Output and LogFile)
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
		Output: os.Stderr,
	}
}

// NewLogger creates a foundation logger. A log file that cannot be opened
// is reported and skipped; the logger still writes to Output.
func NewLogger(cfg LoggerConfig) (*loxlog.Logger, error) {
	// Determine log level
	level := parseLevel(cfg.Level)

	// Build output writer
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	var fileErr error
	if cfg.LogFile != "" {
		writer, err := getOrCreateFileWriter(cfg.LogFile)
		if err != nil {
			fileErr = err
		} else {
			output = io.MultiWriter(output, writer)
		}
	}

	// Add additional outputs if specified
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	// Determine format
	format, err := loxlog.ParseFormat(cfg.Format)
	if err != nil {
		format = loxlog.FormatText
	}

	// Create logger
	logger := loxlog.NewWithConfig(loxlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	})
	if cfg.SessionID != "" {
		logger = logger.WithSessionID(cfg.SessionID)
	}

	return logger, fileErr
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *loxlog.Logger {
	logger, _ := NewLogger(DefaultLoggerConfig(name))
	return logger
}

// getOrCreateFileWriter returns the global FileWriter for path, replacing
// a writer opened for a different path
func getOrCreateFileWriter(path string) (*FileWriter, error) {
	fileWriterMu.Lock()
	defer fileWriterMu.Unlock()

	if globalFileWriter != nil {
		if globalFileWriter.Path() == path {
			return globalFileWriter, nil
		}
		globalFileWriter.Close()
		globalFileWriter = nil
	}

	writer, err := NewFileWriter(DefaultFileWriterConfig(path))
	if err != nil {
		return nil, err
	}
	globalFileWriter = writer
	return writer, nil
}

// GetGlobalFileWriter returns the global FileWriter instance
func GetGlobalFileWriter() *FileWriter {
	fileWriterMu.Lock()
	defer fileWriterMu.Unlock()
	return globalFileWriter
}

// CloseGlobalFileWriter flushes and closes the global FileWriter
func CloseGlobalFileWriter() error {
	fileWriterMu.Lock()
	defer fileWriterMu.Unlock()

	if globalFileWriter != nil {
		err := globalFileWriter.Close()
		globalFileWriter = nil
		return err
	}
	return nil
}

// parseLevel converts a string level to loxlog.Level
func parseLevel(level string) loxlog.Level {
	parsed, err := loxlog.ParseLevel(level)
	if err != nil {
		return loxlog.DefaultLevel()
	}
	return parsed
}
