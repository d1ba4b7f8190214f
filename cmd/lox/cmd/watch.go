package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	loxlog "github.com/msto63/lox/foundation/core/log"
)

// runner processes one input and writes its output
type runner func(in *input) error

// runInput runs fn once, or in watch mode again on every change of the
// input file until interrupted
func (a *app) runInput(cmd *cobra.Command, f *sourceFlags, args []string, fn runner) error {
	in, err := readInput(cmd, f, args)
	if err != nil {
		return err
	}

	if !f.watch {
		return fn(in)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	rerun := func() {
		next, err := readFile(in.path)
		if err != nil {
			a.logger.WarnWithErr("failed to reread watched file", err)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.styles.Muted.Render("--- "+next.name+" changed ---"))
		if err := fn(next); err != nil {
			reportError(cmd.ErrOrStderr(), err)
		}
	}

	if err := fn(in); err != nil {
		reportError(cmd.ErrOrStderr(), err)
	}
	return watchFile(ctx, in.path, a.cfg.Watch.Debounce, a.logger, rerun)
}

// watchFile calls onChange after path was written, created or renamed
// into place and no further event arrived for debounce. It returns when
// ctx is done.
func watchFile(ctx context.Context, path string, debounce time.Duration, logger *loxlog.Logger, onChange func()) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file are seen
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	logger.Info("watching for changes", loxlog.Fields{"file": target})

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Info("stopped watching", loxlog.Fields{"file": target})
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			logger.Debug("file event", loxlog.Fields{"op": event.Op.String()})

			// Debounce: restart the quiet period on every event
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.ErrorWithErr("watcher error", err)
		}
	}
}
