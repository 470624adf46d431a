package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"gvcheck/internal/catalog"
	"gvcheck/internal/config"
	"gvcheck/internal/domain"
	"gvcheck/internal/execution"
)

// Watcher re-runs the parse check for a cataloged script whenever the
// script file changes. Files outside the catalog are ignored, so the
// closed enumeration still holds in watch mode.
type Watcher struct {
	config   *config.Config
	runner   *execution.Runner
	onResult func(domain.CheckResult)

	debounce time.Duration
}

// New creates a Watcher that reports re-run results through onResult.
func New(cfg *config.Config, runner *execution.Runner, onResult func(domain.CheckResult)) *Watcher {
	return &Watcher{
		config:   cfg,
		runner:   runner,
		onResult: onResult,
		debounce: 300 * time.Millisecond, // batch rapid editor saves
	}
}

// Run watches the script directory until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Join(w.config.GetExamplesRoot(), filepath.FromSlash(catalog.ScriptDir))
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			name := filepath.Base(event.Name)
			if _, ok := catalog.Lookup(name, domain.KindParse); !ok {
				continue
			}
			pending[name] = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher: %w", err)

		case <-ticker.C:
			now := time.Now()
			for name, last := range pending {
				if now.Sub(last) < w.debounce {
					continue
				}
				delete(pending, name)
				ex, ok := catalog.Lookup(name, domain.KindParse)
				if !ok {
					continue
				}
				w.onResult(w.runner.Run(ctx, ex))
			}
		}
	}
}
