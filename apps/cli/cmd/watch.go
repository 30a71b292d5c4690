package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

// watchEnvFile calls regenerate whenever envFile is written, until ctx is
// done. Regeneration errors are reported and watching continues.
func watchEnvFile(ctx context.Context, envFile string, formatter Formatter, regenerate func(context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file on save, so watch its directory.
	dir := filepath.Dir(envFile)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target := filepath.Clean(envFile)

	formatter.FormatWatch(envFile)

	// Debounce: restart the timer on each event
	var debounceTimer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounceTimer == nil {
				debounceTimer = time.NewTimer(WatchDebounceDelay)
				defer debounceTimer.Stop()
			} else {
				debounceTimer.Reset(WatchDebounceDelay)
			}
			fire = debounceTimer.C

		case <-fire:
			fire = nil
			if err := regenerate(ctx); err != nil {
				formatter.FormatError(err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			formatter.FormatError(fmt.Errorf("watcher error: %w", err))
		}
	}
}
