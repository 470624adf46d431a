package main

import (
	"fmt"
	"os"

	"gvcheck/internal/cli"
	"gvcheck/internal/cli/commands"
	"gvcheck/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:          "gvcheck",
		Short:        "Graphviz example validator",
		Long:         `Validates the example artifacts bundled with a Graphviz source tree: compiles the C demos against cgraph and gvc, parse-checks the GVPR example scripts and verifies the clustg script's output on a sample graph.`,
		Version:      version,
		SilenceUsage: true,
	}

	// Create initial config with defaults; PreRunE resolves the
	// environment after flags are parsed
	cfg := config.New()

	var flags cli.Flags

	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
