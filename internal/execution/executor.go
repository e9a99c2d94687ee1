package execution

import (
	"context"

	"mockcheck/internal/domain"
)

// Executor executes test cases and returns the aggregated summary
type Executor interface {
	Execute(ctx context.Context, cases []domain.TestCase) *domain.RunSummary
	SetProgress(progress Progress)
	OnResult(fn ResultFunc)
}

var _ Executor = (*Sequencer)(nil)
