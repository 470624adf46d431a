package commands

import (
	"fmt"

	"gvcheck/internal/config"
	"gvcheck/internal/storage"
	"gvcheck/internal/ui"

	"github.com/spf13/cobra"
)

// FailsCommand handles the fails command
type FailsCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewFailsCommand creates a new FailsCommand
func NewFailsCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer) *FailsCommand {
	return &FailsCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (fc *FailsCommand) Execute(cmd *cobra.Command, args []string) error {
	output, err := fc.storage.Load()
	if err != nil {
		return fmt.Errorf("no saved results (run 'gvcheck run' first): %w", err)
	}
	return fc.viewer.View(output)
}
