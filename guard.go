package nircmd

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/renameio/v2"
	"vawter.tech/stopper"
)

// stopGrace is how long cleanup waits for background goroutines
const stopGrace = 100 * time.Millisecond

// startGuard watches the extraction directory and re-extracts the tool
// binary if it disappears. Temp reapers on long uptimes delete files
// under /tmp out from under running processes; without the guard the
// next operation would fail with a confusing exec error.
func (c *Client) startGuard() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating tool guard watcher: %w", err)
	}
	if err := watcher.Add(c.tmpDir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watching tool dir %q: %w", c.tmpDir, err)
	}

	sctx := stopper.WithContext(context.Background())
	sctx.Defer(func() {
		_ = watcher.Close()
	})

	c.guardCleanup = func() error {
		sctx.Stop(stopGrace)
		return sctx.Wait()
	}

	sctx.Go(func(sctx *stopper.Context) error {
		for !sctx.IsStopping() {
			select {
			case <-sctx.Stopping():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Name != c.toolPath {
					continue
				}
				if event.Op&(fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				c.log.Warn("extracted tool removed externally, re-extracting", "path", c.toolPath)
				if err := c.reextract(); err != nil {
					c.log.Error("re-extracting tool", "path", c.toolPath, "err", err)
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					c.log.Warn("tool guard watcher error", "err", err)
				}
			}
		}
		return nil
	})

	return nil
}

// reextract rewrites the tool binary at its original path. The write
// is atomic, so an operation racing the re-extraction never executes
// a partial binary.
func (c *Client) reextract() error {
	data, err := fs.ReadFile(c.resource, c.toolName)
	if err != nil {
		return fmt.Errorf("re-reading tool resource %q: %w", c.toolName, err)
	}
	if err := renameio.WriteFile(c.toolPath, data, ToolMode); err != nil {
		return fmt.Errorf("rewriting tool: %w", err)
	}
	c.log.Info("tool re-extracted", "path", c.toolPath)
	return nil
}
