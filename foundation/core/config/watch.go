// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Reloads the configuration when its file changes on disk.
//              The parent directory is watched so that editors replacing the
//              file through a rename are still noticed; bursts of events are
//              debounced into a single reload.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file watching
// - 2026-10-19 v0.2.0: Replaced one second polling with fsnotify events

package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	loxerror "github.com/msto63/lox/foundation/core/error"
	loxstringx "github.com/msto63/lox/foundation/utils/stringx"
)

// ReloadDebounce is the quiet period after the last file event before reloading
const ReloadDebounce = 200 * time.Millisecond

// Watch starts monitoring the configuration file. Calling Watch on a
// config that is already watched is a no-op.
func (c *Config) Watch() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopWatch != nil {
		return nil
	}
	if loxstringx.IsBlank(c.filePath) {
		return loxerror.New("file path required for watching").
			WithCode(loxerror.CodeInvalidConfig).
			WithOperation("config.Watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return loxerror.Wrap(err, "failed to create file watcher").
			WithCode(loxerror.CodeConfigError).
			WithOperation("config.Watch")
	}

	if err := watcher.Add(filepath.Dir(c.filePath)); err != nil {
		watcher.Close()
		return loxerror.Wrap(err, "failed to watch config directory").
			WithCode(loxerror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("filePath", c.filePath)
	}

	done := make(chan struct{})
	c.stopWatch = func() {
		close(done)
		watcher.Close()
	}

	go c.watchLoop(watcher, done)
	return nil
}

func (c *Config) watchLoop(watcher *fsnotify.Watcher, done <-chan struct{}) {
	target := filepath.Clean(c.filePath)

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-done:
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(ReloadDebounce, func() {
				if err := c.reload(); err != nil {
					c.notifyError(err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			c.notifyError(loxerror.Wrap(err, "file watcher error").
				WithCode(loxerror.CodeConfigError).
				WithOperation("config.watchLoop"))
		}
	}
}

// reload re-reads the file and notifies change handlers with snapshots
// of the old and new data
func (c *Config) reload() error {
	c.mu.RLock()
	filePath, format := c.filePath, c.format
	c.mu.RUnlock()

	newData, err := readFile(filePath, format)
	if err != nil {
		return err
	}

	c.mu.Lock()
	oldConfig := c.snapshot()
	c.data = c.applyDefaults(newData)
	newConfig := c.snapshot()
	handlers := append([]ChangeHandler(nil), c.handlers...)
	c.mu.Unlock()

	for _, handler := range handlers {
		if handler != nil {
			handler(oldConfig, newConfig)
		}
	}
	return nil
}

// snapshot copies data and settings; the caller holds c.mu
func (c *Config) snapshot() *Config {
	return &Config{
		data:      deepCopyMap(c.data),
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: c.envPrefix,
	}
}

func (c *Config) notifyError(err error) {
	c.mu.RLock()
	handlers := make([]func(error), len(c.errorHandlers))
	copy(handlers, c.errorHandlers)
	c.mu.RUnlock()

	for _, handler := range handlers {
		handler(err)
	}
}

// StopWatching stops file monitoring
func (c *Config) StopWatching() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopWatch != nil {
		c.stopWatch()
		c.stopWatch = nil
	}
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stopWatch != nil
}
