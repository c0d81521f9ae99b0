// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alignment

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the model in the given file every time the file is
// written or created, calling onChange with each successfully loaded model.
// Load and watcher errors are logged and do not stop watching.
// The parent directory is watched so that editors that replace the file
// on save are handled. Watch blocks until the context is done.
func Watch(ctx context.Context, filename string, onChange func(m *Model)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			m, err := Open(abs)
			if err != nil {
				slog.Error("error reloading alignment model: " + err.Error())
				continue
			}
			onChange(m)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("alignment model watcher error: " + err.Error())
		}
	}
}
