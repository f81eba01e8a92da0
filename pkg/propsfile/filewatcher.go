// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package propsfile

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/wavetermdev/waveanim/pkg/animate"
	"github.com/wavetermdev/waveanim/pkg/util/logutil"
)

type WatcherUpdate struct {
	Props animate.AnimationProps
	Err   error
}

// Watcher reloads a props file when it changes.  the containing directory is
// watched (editors often replace the file) and events are filtered by name.
type Watcher struct {
	fileName string
	watcher  *fsnotify.Watcher
	mutex    sync.Mutex
	onUpdate func(WatcherUpdate)
	last     WatcherUpdate
}

func MakeWatcher(fileName string, onUpdate func(WatcherUpdate)) (*Watcher, error) {
	absName, err := filepath.Abs(fileName)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(absName)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(absName), err)
	}
	return &Watcher{fileName: absName, watcher: fsw, onUpdate: onUpdate}, nil
}

// Start sends the initial value and then an update for every change
func (w *Watcher) Start() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	w.sendUpdate()
	events := w.watcher.Events
	errors := w.watcher.Errors
	go func() {
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return
				}
				w.handleEvent(event)
			case err, ok := <-errors:
				if !ok {
					return
				}
				log.Printf("[propsfile] watcher error: %v\n", err)
			}
		}
	}()
}

func (w *Watcher) Close() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.watcher != nil {
		w.watcher.Close()
		w.watcher = nil
	}
}

func (w *Watcher) GetLast() WatcherUpdate {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.last
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.watcher == nil {
		return
	}
	logutil.DevPrintf("[propsfile] event %s\n", event)
	if event.Op == fsnotify.Chmod || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		return
	}
	if filepath.Clean(event.Name) != w.fileName {
		return
	}
	w.sendUpdate()
}

// must hold the lock
func (w *Watcher) sendUpdate() {
	props, err := Load(w.fileName)
	w.last = WatcherUpdate{Props: props, Err: err}
	if w.onUpdate != nil {
		w.onUpdate(w.last)
	}
}
