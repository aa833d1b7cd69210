package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/Aman-CERP/constream/internal/errors"
)

// Watch reloads the file at path whenever it is written, created or
// renamed into place and passes the result to fn. It blocks until ctx is
// done. Reload failures are logged and skipped so a half-written file does
// not stop the watch.
//
// The parent directory is watched rather than the file, because editors
// usually replace files instead of writing them in place.
func Watch(ctx context.Context, path string, fn func(*Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.New(errors.ErrCodeConfigWatch, "failed to create file watcher", err)
	}
	defer func() { _ = w.Close() }()

	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.New(errors.ErrCodeConfigWatch, "failed to resolve config path", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return errors.New(errors.ErrCodeConfigWatch, "failed to watch config directory", err).
			WithDetail("path", abs)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			cfg, err := LoadFile(abs)
			if err != nil {
				slog.Warn("config reload failed", errors.LogAttrs(err)...)
				continue
			}
			slog.Debug("config reloaded", slog.String("path", abs), slog.String("config", cfg.String()))
			fn(cfg)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("config watcher error", slog.String("error", err.Error()))
		}
	}
}
