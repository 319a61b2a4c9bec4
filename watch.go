package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"gopkg.microglot.org/gqlsdl.go/internal/fs"
)

// Rapid saves within this window cause one pass.
var watchDebounce = 500 * time.Millisecond

// watch runs once and then again after each change to a schema file in the
// directories of targets, until ctx is done.
func (c *cli) watch(ctx context.Context, targets []string) int {
	dirs, err := c.watchDirs(targets)
	if err != nil {
		fmt.Fprintln(c.stderr, err.Error())
		return 2
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(c.stderr, "failed to create watcher: %v\n", err)
		return 1
	}
	defer watcher.Close()
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			fmt.Fprintf(c.stderr, "failed to watch directory %s: %v\n", dir, err)
			return 1
		}
		c.log.WithField("dir", dir).Debug("watching")
	}

	c.once(ctx, targets)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return 0
		case event, ok := <-watcher.Events:
			if !ok {
				return 0
			}
			if !fs.IsSchemaFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(watchDebounce)
			c.log.WithField("file", event.Name).Debug("change detected")
		case <-pending:
			pending = nil
			c.log.Info("parsing after change")
			c.once(ctx, targets)
		case err, ok := <-watcher.Errors:
			if !ok {
				return 0
			}
			c.log.WithError(err).Warn("watch error")
		}
	}
}

// watchDirs returns the directory of every target, or the target itself
// when it is a directory.
func (c *cli) watchDirs(targets []string) ([]string, error) {
	root, err := filepath.Abs(c.cfg.Root)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var dirs []string
	for _, target := range targets {
		if target == stdinTarget {
			continue
		}
		p := filepath.Join(root, target)
		stat, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !stat.IsDir() {
			p = filepath.Dir(p)
		}
		if !seen[p] {
			seen[p] = true
			dirs = append(dirs, p)
		}
	}
	return dirs, nil
}
