package commands

import (
	"gvcheck/internal/catalog"
	"gvcheck/internal/config"
	"gvcheck/internal/domain"
	"gvcheck/internal/execution"
	"gvcheck/internal/toolchain"
	"gvcheck/internal/watch"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// WatchCommand handles the watch command
type WatchCommand struct {
	config *config.Config
}

// NewWatchCommand creates a new WatchCommand
func NewWatchCommand(cfg *config.Config) *WatchCommand {
	return &WatchCommand{config: cfg}
}

// Execute runs the command
func (wc *WatchCommand) Execute(cmd *cobra.Command, args []string) error {
	if err := catalog.VerifyRoot(wc.config.GetExamplesRoot()); err != nil {
		return err
	}

	caps := toolchain.Probe(cmd.Context(), wc.config)
	if caps.Interpreter != toolchain.Available {
		color.Yellow("GVPR not available; parse checks will be reported as skipped")
	}
	runner := execution.NewRunner(wc.config, caps)

	watcher := watch.New(wc.config, runner, func(r domain.CheckResult) {
		switch r.Outcome {
		case domain.OutcomePass:
			color.Green("✓ %s", r.Example.Name)
		case domain.OutcomeSkip:
			color.Yellow("- %s (%s)", r.Example.Name, r.SkipReason)
		default:
			color.Red("✗ %s: %v", r.Example.Name, r.Err)
		}
	})

	color.Cyan("Watching %s for script changes (Ctrl+C to stop)", catalog.ScriptDir)
	return watcher.Run(cmd.Context())
}
