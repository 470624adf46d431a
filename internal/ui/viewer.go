package ui

import "gvcheck/internal/domain"

// Viewer displays check results in an interactive TUI
type Viewer interface {
	View(results *domain.RunOutput) error
}
