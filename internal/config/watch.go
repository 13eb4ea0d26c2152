package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"pickwise/internal/eventbus"
)

// Watch reloads the config file at path whenever it changes and publishes
// a ConfigChangedEvent. It blocks until ctx is done.
func Watch(ctx context.Context, path string, bus eventbus.EventBus) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	// Editors replace files on save, so watch the directory
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			cfg, err := Parse(path)
			if err != nil {
				log.Printf("Ignoring config change: %v", err)
				continue
			}
			if err := ApplyEnv(cfg); err != nil {
				log.Printf("Ignoring config change: %v", err)
				continue
			}
			bus.Publish(eventbus.ConfigChangedEvent{
				Multi:       cfg.Multi,
				ToggleShift: cfg.ToggleShift,
				Fallback:    cfg.FallbackSelection,
				ValueKey:    string(cfg.ValueKey),
			})

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("Config watcher error: %v", err)
		}
	}
}
