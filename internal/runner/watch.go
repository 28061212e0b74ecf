// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the burst of events an editor emits per save.
const DefaultDebounce = 100 * time.Millisecond

// Watch calls fn once, then again after every write to path, until ctx is
// done. Events within window of each other trigger a single call. The
// parent directory is watched so that editors that save by rename are
// seen. Errors from fn are logged and do not stop the watch; a failing
// watcher does.
func (r *Runner) Watch(ctx context.Context, path string, window time.Duration, fn func(context.Context) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("runner: watch: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err = w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("runner: watch %s: %w", target, err)
	}

	run := func() {
		if err := fn(ctx); err != nil {
			r.log.Warn("watched run failed", zap.String("path", target), zap.Error(err))
		}
	}
	run()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			r.log.Debug("change detected", zap.String("path", target), zap.Stringer("op", ev.Op))
			if timer == nil {
				timer = time.NewTimer(window)
			} else {
				timer.Reset(window)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("runner: watch %s: %w", target, err)
		case <-fire:
			fire = nil
			run()
		}
	}
}
