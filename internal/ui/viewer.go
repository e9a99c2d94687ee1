package ui

import "mockcheck/internal/domain"

// Viewer displays a saved run in an interactive TUI
type Viewer interface {
	View(output *domain.TestResultsOutput) error
}

var _ Viewer = (*ErrorViewer)(nil)
