package commands

import (
	"gvcheck/internal/cli"
	"gvcheck/internal/config"
	"gvcheck/internal/execution"
	"gvcheck/internal/storage"
	"gvcheck/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	List    *ListCommand
	Probe   *ProbeCommand
	Fails   *FailsCommand
	History *HistoryCommand
	Watch   *WatchCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	scheduler := execution.NewRoundRobinScheduler()
	jsonStorage := storage.NewJSONStorage(cfg)
	history := storage.NewHistory(cfg)
	formatter := ui.NewFormatter(cfg)
	failsViewer := ui.NewFailsViewer(cfg, jsonStorage)

	return &Commands{
		Run:     NewRunCommand(cfg, scheduler, jsonStorage, history, formatter, failsViewer),
		List:    NewListCommand(cfg, formatter),
		Probe:   NewProbeCommand(cfg, formatter),
		Fails:   NewFailsCommand(cfg, jsonStorage, failsViewer),
		History: NewHistoryCommand(cfg, history, formatter),
		Watch:   NewWatchCommand(cfg),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		// Resolve the environment once, after flag parsing
		*cfg = *config.Resolve(flags.ToConfigFlags())
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run example checks",
		Long:    "Compile the C demos, parse-check the GVPR scripts and verify the clustg output against a Graphviz source tree",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().IntVarP(&flags.Jobs, "jobs", "j", config.DefaultJobs, "Number of checks to run in parallel")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter checks by name pattern (supports wildcards, e.g. '*clust*' or 'de*')")
	runCmd.Flags().StringVarP(&flags.Kind, "kind", "k", "", "Run only checks of one kind (compile, parse, output)")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first check failure")
	runCmd.Flags().StringVarP(&flags.ExamplesRoot, "examples-root", "r", "", "Path to the Graphviz source tree (default: GVCHECK_EXAMPLES_ROOT or cwd)")
	runCmd.Flags().BoolVar(&flags.OpenFails, "fails", false, "Open the fails viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List cataloged checks",
		Long:    "Print the closed set of example checks without executing them",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter checks by name pattern (supports wildcards)")
	listCmd.Flags().StringVarP(&flags.Kind, "kind", "k", "", "List only checks of one kind (compile, parse, output)")
	rootCmd.AddCommand(listCmd)

	// Probe command
	probeCmd := &cobra.Command{
		Use:     "probe",
		Short:   "Report toolchain availability",
		Long:    "Probe the search path for the C compiler and the GVPR interpreter",
		RunE:    c.Probe.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(probeCmd)

	// Fails command
	failsCmd := &cobra.Command{
		Use:     "fails",
		Short:   "View failed checks interactively",
		Long:    "Display failed checks from the last run in an interactive viewer",
		RunE:    c.Fails.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(failsCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:     "history",
		Short:   "Show recent validation runs",
		Long:    "Print pass/fail/skip counts of recent runs from the local history",
		RunE:    c.History.Execute,
		PreRunE: applyFlags,
	}
	historyCmd.Flags().IntVarP(&flags.HistoryLimit, "limit", "n", 10, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)

	// Watch command
	watchCmd := &cobra.Command{
		Use:     "watch",
		Short:   "Re-run parse checks on script changes",
		Long:    "Watch the GVPR script directory and re-run the parse check for any cataloged script that changes",
		RunE:    c.Watch.Execute,
		PreRunE: applyFlags,
	}
	watchCmd.Flags().StringVarP(&flags.ExamplesRoot, "examples-root", "r", "", "Path to the Graphviz source tree (default: GVCHECK_EXAMPLES_ROOT or cwd)")
	rootCmd.AddCommand(watchCmd)
}
