// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/systyle/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a style file whenever it changes, for interactive
// sessions where a style is being edited while figures are regenerated.
type Watcher struct {
	// Filename is the style file being watched.
	Filename string

	watcher *fsnotify.Watcher
}

// NewWatcher returns a new Watcher for the given style file. The
// containing directory is watched, so that files replaced by editors
// are still seen. Call Run to process changes.
func NewWatcher(filename string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	filename = filepath.Clean(filename)
	if err := fw.Add(filepath.Dir(filename)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{Filename: filename, watcher: fw}, nil
}

// Run calls fn with the newly loaded style each time the file is written
// or created, until the context is done. Files that fail to load are logged
// and skipped. The watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, fn func(st *Style)) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.Filename || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			st, err := Open(w.Filename)
			if errors.Log(err) != nil {
				continue
			}
			slog.Info("style: reloaded", "file", w.Filename)
			fn(st)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

// Watch calls fn with the reloaded style each time the given style file
// changes, until the context is done.
func Watch(ctx context.Context, filename string, fn func(st *Style)) error {
	w, err := NewWatcher(filename)
	if err != nil {
		return err
	}
	return w.Run(ctx, fn)
}
