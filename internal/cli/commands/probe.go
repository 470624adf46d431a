package commands

import (
	"gvcheck/internal/config"
	"gvcheck/internal/toolchain"
	"gvcheck/internal/ui"

	"github.com/spf13/cobra"
)

// ProbeCommand handles the probe command
type ProbeCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewProbeCommand creates a new ProbeCommand
func NewProbeCommand(cfg *config.Config, formatter *ui.Formatter) *ProbeCommand {
	return &ProbeCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (pc *ProbeCommand) Execute(cmd *cobra.Command, args []string) error {
	caps := toolchain.Probe(cmd.Context(), pc.config)
	return pc.formatter.PrintProbe(caps)
}
