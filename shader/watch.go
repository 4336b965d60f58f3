// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"

	"cogentcore.org/glsteps/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watcher re-parses a shader file whenever it changes on disk.
// The parsing happens on the watcher's goroutine; the resulting
// sources must be built into programs by the rendering thread.
type Watcher struct {
	path    string
	w       *fsnotify.Watcher
	sources chan ProgramSource
	errs    chan error
	done    chan struct{}

	cancel    context.CancelFunc
	closeOnce sync.Once
}

// Watch starts watching the shader file at the given path until
// ctx is done or [Watcher.Close] is called. The directory of the
// file is watched, so that editors that replace the file on save
// are handled.
func Watch(ctx context.Context, path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher{
		path:    abs,
		w:       fw,
		sources: make(chan ProgramSource, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
		cancel:  cancel,
	}
	go w.run(ctx)
	return w, nil
}

// Sources returns the channel on which newly parsed sources are sent.
// Only the latest source is kept if it is not received in time.
func (w *Watcher) Sources() <-chan ProgramSource {
	return w.sources
}

// Errors returns the channel on which parse and watch errors are sent.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Latest returns the most recent source without blocking, if any.
func (w *Watcher) Latest() (ProgramSource, bool) {
	select {
	case ps := <-w.sources:
		return ps, true
	default:
		return ProgramSource{}, false
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.cancel()
		<-w.done
		err = w.w.Close()
	})
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			ps, err := ParseFile(w.path)
			if err != nil {
				// the file may be caught mid-replace; the next event retries
				slog.Debug("shader.Watcher: parse", "file", w.path, "err", err)
				if !errors.Is(err, fs.ErrNotExist) {
					w.sendErr(err)
				}
				continue
			}
			slog.Info("shader.Watcher: reloaded", "file", w.path)
			w.send(ps)
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		}
	}
}

// send replaces any pending source with ps.
func (w *Watcher) send(ps ProgramSource) {
	for {
		select {
		case w.sources <- ps:
			return
		default:
		}
		select {
		case <-w.sources:
		default:
		}
	}
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
