// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstree/fault"
)

const (
	watcherTimeout = 5 * time.Second
)

func setupTestFileWatcher(t *testing.T) (*FileWatcherData, string) {
	dir, err := ioutil.TempDir("", "file-watcher")
	require.Nil(t, err, "temporary directory error")

	fileName := filepath.Join(dir, "watched.conf")
	err = ioutil.WriteFile(fileName, []byte("return {}"), 0o600)
	require.Nil(t, err, "create file error")

	channels := WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	w, err := newFileWatcher(fileName, logger.New("test"), channels)
	require.Nil(t, err, "new watcher error")

	return w.(*FileWatcherData), dir
}

func waitFor(t *testing.T, ch <-chan struct{}, name string) {
	select {
	case <-ch:
	case <-time.After(watcherTimeout):
		t.Fatalf("watcher did not send %s event", name)
	}
}

func TestFileWatcherChangeAndRemove(t *testing.T) {
	w, dir := setupTestFileWatcher(t)
	defer os.RemoveAll(dir)
	defer w.Stop()

	err := w.Start()
	require.Nil(t, err, "start error")

	err = ioutil.WriteFile(w.filePath, []byte("return { seed = 1 }"), 0o600)
	require.Nil(t, err, "write file error")
	waitFor(t, w.channels.change, "change")

	err = os.Remove(w.filePath)
	require.Nil(t, err, "remove file error")
	waitFor(t, w.channels.remove, "remove")
}

func TestNewFileWatcherMissingFile(t *testing.T) {
	channels := WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	w, err := newFileWatcher("/no/such/file.conf", logger.New("test"), channels)
	assert.Nil(t, w, "unexpected watcher")
	assert.Equal(t, fault.ErrMissingConfigFile, err, "wrong error")
}

func TestIsChannelFull(t *testing.T) {
	w, dir := setupTestFileWatcher(t)
	defer os.RemoveAll(dir)
	defer w.Stop()

	ch := make(chan struct{}, 1)
	assert.False(t, w.isChannelFull(ch), "empty channel is full")

	ch <- struct{}{}
	assert.True(t, w.isChannelFull(ch), "channel not full")
}

func TestSendEventDiscardsWhenFull(t *testing.T) {
	w, dir := setupTestFileWatcher(t)
	defer os.RemoveAll(dir)
	defer w.Stop()

	ch := make(chan struct{}, 1)
	w.sendEvent(ch, "test")
	w.sendEvent(ch, "test")

	assert.Equal(t, 1, len(ch), "wrong number of pending events")
}

func TestWatcherEventClassification(t *testing.T) {
	tests := []struct {
		op     fsnotify.Op
		change bool
		remove bool
	}{
		{fsnotify.Write, true, false},
		{fsnotify.Chmod, true, false},
		{fsnotify.Remove, false, true},
		{fsnotify.Rename, false, true},
		{fsnotify.Create, false, false},
	}

	for i, item := range tests {
		event := fsnotify.Event{Name: "x.conf", Op: item.op}
		assert.Equal(t, item.change, watcherEventFileChange(event), "%d: wrong change", i)
		assert.Equal(t, item.remove, watcherEventFileRemove(event), "%d: wrong remove", i)
	}
}
