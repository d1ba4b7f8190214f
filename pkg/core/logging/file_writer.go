// ============================================================================
// lox - Lox expression front end
// ============================================================================
//
// Package:     logging
// Description: FileWriter batches log lines and appends them to a log file
// Author:      msto63
// Created:     2025-12-06
// Modified:    2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileWriter implements io.Writer and appends log lines to a file in batches
type FileWriter struct {
	// Configuration
	path        string
	batchSize   int
	flushPeriod time.Duration

	file *os.File

	// Batching
	buffer   [][]byte
	bufferMu sync.Mutex
	flushCh  chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
	closed   bool

	// Fallback receives lines the file could not take
	fallback io.Writer
}

// FileWriterConfig holds configuration for FileWriter
type FileWriterConfig struct {
	Path        string        // Log file, created with its directory if missing
	BatchSize   int           // Number of lines to batch (default: 100)
	FlushPeriod time.Duration // How often to flush (default: 1s)
	Fallback    io.Writer     // Fallback writer on failure (default: os.Stderr)
}

// DefaultFileWriterConfig returns default configuration
func DefaultFileWriterConfig(path string) FileWriterConfig {
	return FileWriterConfig{
		Path:        path,
		BatchSize:   100,
		FlushPeriod: time.Second,
		Fallback:    os.Stderr,
	}
}

// NewFileWriter opens the log file and starts the flush worker
func NewFileWriter(cfg FileWriterConfig) (*FileWriter, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushPeriod <= 0 {
		cfg.FlushPeriod = time.Second
	}
	if cfg.Fallback == nil {
		cfg.Fallback = os.Stderr
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	w := &FileWriter{
		path:        cfg.Path,
		batchSize:   cfg.BatchSize,
		flushPeriod: cfg.FlushPeriod,
		file:        file,
		buffer:      make([][]byte, 0, cfg.BatchSize),
		flushCh:     make(chan struct{}, 1),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
		fallback:    cfg.Fallback,
	}

	// Start flush worker
	go w.flushWorker()

	return w, nil
}

// Write implements io.Writer. The line is copied; p may be reused.
// After Close, lines go straight to the fallback writer.
func (w *FileWriter) Write(p []byte) (n int, err error) {
	line := make([]byte, len(p))
	copy(line, p)

	// Add to buffer
	w.bufferMu.Lock()
	if w.closed {
		w.bufferMu.Unlock()
		return w.fallback.Write(line)
	}
	w.buffer = append(w.buffer, line)
	shouldFlush := len(w.buffer) >= w.batchSize
	w.bufferMu.Unlock()

	// Trigger flush if buffer is full
	if shouldFlush {
		select {
		case w.flushCh <- struct{}{}:
		default:
		}
	}

	return len(p), nil
}

// flushWorker periodically flushes the buffer
func (w *FileWriter) flushWorker() {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.flushPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			// Final flush
			w.flush()
			return
		case <-w.flushCh:
			w.flush()
		case <-ticker.C:
			w.flush()
		}
	}
}

// flush appends buffered lines to the file
func (w *FileWriter) flush() {
	w.bufferMu.Lock()
	if len(w.buffer) == 0 {
		w.bufferMu.Unlock()
		return
	}

	// Swap buffer
	lines := w.buffer
	w.buffer = make([][]byte, 0, w.batchSize)
	w.bufferMu.Unlock()

	for _, line := range lines {
		if _, err := w.file.Write(line); err != nil {
			w.fallback.Write(line)
		}
	}
}

// Close flushes pending lines and closes the file. Further calls are no-ops.
func (w *FileWriter) Close() error {
	var err error
	w.stopOnce.Do(func() {
		w.bufferMu.Lock()
		w.closed = true
		w.bufferMu.Unlock()

		close(w.stopCh)
		<-w.doneCh // Wait for final flush
		err = w.file.Close()
	})
	return err
}

// Path returns the log file path
func (w *FileWriter) Path() string {
	return w.path
}

// Pending returns the number of buffered lines not yet written
func (w *FileWriter) Pending() int {
	w.bufferMu.Lock()
	defer w.bufferMu.Unlock()
	return len(w.buffer)
}
