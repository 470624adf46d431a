package commands

import (
	"gvcheck/internal/config"
	"gvcheck/internal/storage"
	"gvcheck/internal/ui"

	"github.com/spf13/cobra"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config    *config.Config
	history   *storage.History
	formatter *ui.Formatter
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, history *storage.History, formatter *ui.Formatter) *HistoryCommand {
	return &HistoryCommand{
		config:    cfg,
		history:   history,
		formatter: formatter,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	runs, err := hc.history.Recent(hc.config.Flags.HistoryLimit)
	if err != nil {
		return err
	}
	return hc.formatter.PrintHistory(runs)
}
