package commands

import (
	"fmt"

	"gvcheck/internal/catalog"
	"gvcheck/internal/config"
	"gvcheck/internal/execution"
	"gvcheck/internal/storage"
	"gvcheck/internal/toolchain"
	"gvcheck/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scheduler execution.Scheduler
	storage   storage.Storage
	history   *storage.History
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scheduler execution.Scheduler,
	st storage.Storage,
	history *storage.History,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scheduler: scheduler,
		storage:   st,
		history:   history,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// Select checks from the closed catalog
	examples := catalog.All()
	examples = catalog.FilterByKind(examples, rc.config.Flags.Kind)
	examples = catalog.FilterByName(examples, rc.config.Flags.NameFilter)

	if len(examples) == 0 {
		color.Yellow("No checks match")
		return nil
	}

	if err := catalog.VerifyRoot(rc.config.GetExamplesRoot()); err != nil {
		return err
	}

	// Probe the toolchain once; checks never look at PATH themselves
	caps := toolchain.Probe(cmd.Context(), rc.config)
	runner := execution.NewRunner(rc.config, caps)
	pool := execution.NewWorkerPool(rc.config, runner, rc.scheduler)

	progressBar := ui.NewProgressBar(len(examples))
	pool.SetProgress(progressBar)

	results, duration, err := pool.ExecuteWithOptions(cmd.Context(), examples, rc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	output := storage.BuildOutput(results, duration, rc.config.Jobs)
	if err := rc.storage.SaveOutput(output); err != nil {
		return fmt.Errorf("failed to save check results: %w", err)
	}
	if err := rc.history.Record(output.Meta); err != nil {
		return fmt.Errorf("failed to record run history: %w", err)
	}

	if err := rc.formatter.PrintRunStats(output); err != nil {
		return err
	}

	if output.Meta.FailedChecks > 0 {
		if rc.config.Flags.OpenFails {
			if err := rc.viewer.View(output); err != nil {
				return err
			}
		}
		return fmt.Errorf("%d check(s) failed", output.Meta.FailedChecks)
	}
	return nil
}
