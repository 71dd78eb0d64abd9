package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driving"
	"github.com/archivist-labs/docmatch-cli/internal/core/services"
	"github.com/archivist-labs/docmatch-cli/internal/logger"
)

// watchDebounce coalesces bursts of filesystem events (editors often
// write, chmod and rename in quick succession) into one re-run.
const watchDebounce = 500 * time.Millisecond

// watchAndRerun re-runs the pipeline whenever the records directory
// changes. Blocks until interrupted.
func watchAndRerun(ctx context.Context, cmd *cobra.Command, reconciler *services.Reconciler, opts driving.RunOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(opts.RecordsDir); err != nil {
		return fmt.Errorf("watching %s: %w", opts.RecordsDir, err)
	}

	// The text table is already cached after the first run; a forced
	// re-extract on every records change would be wasted work.
	opts.ForceExtract = false

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	cmd.Printf("Watching %s for changes (ctrl-c to stop)...\n", opts.RecordsDir)

	var debounce *time.Timer
	var rerun <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename) {
				continue
			}
			logger.Debug("records change detected: %s", event)
			if debounce == nil {
				debounce = time.NewTimer(watchDebounce)
			} else {
				debounce.Reset(watchDebounce)
			}
			rerun = debounce.C
		case <-rerun:
			rerun = nil
			cmd.Println("Records changed, re-running match...")
			summary, err := reconciler.Run(ctx, opts)
			if err != nil {
				logger.Warn("re-run failed: %v", err)
				continue
			}
			cmd.Println(renderRunSummary(summary, opts.ReportPath))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)
		case <-sig:
			cmd.Println("Stopping watch.")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
