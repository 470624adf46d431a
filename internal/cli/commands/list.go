package commands

import (
	"gvcheck/internal/catalog"
	"gvcheck/internal/config"
	"gvcheck/internal/ui"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	examples := catalog.All()
	examples = catalog.FilterByKind(examples, lc.config.Flags.Kind)
	examples = catalog.FilterByName(examples, lc.config.Flags.NameFilter)

	return lc.formatter.PrintCheckList(examples)
}
