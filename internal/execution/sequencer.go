package execution

import (
	"context"
	"time"

	"mockcheck/internal/domain"
)

// Progress receives running counts while a suite executes
type Progress interface {
	Update(passed, failed int)
	Finish()
}

// ResultFunc is called after each case with its 1-based position
type ResultFunc func(index, total int, result domain.TestResult)

// Sequencer runs cases one at a time, in order, against a Runner
type Sequencer struct {
	runner   *Runner
	progress Progress
	onResult ResultFunc
}

// NewSequencer creates a new Sequencer
func NewSequencer(runner *Runner) *Sequencer {
	return &Sequencer{runner: runner}
}

// SetProgress sets the progress reporter for the sequencer
func (s *Sequencer) SetProgress(progress Progress) {
	s.progress = progress
}

// OnResult registers a callback invoked after every case
func (s *Sequencer) OnResult(fn ResultFunc) {
	s.onResult = fn
}

// Execute runs every case exactly once. A failing case never stops the run.
func (s *Sequencer) Execute(ctx context.Context, cases []domain.TestCase) *domain.RunSummary {
	summary := &domain.RunSummary{}
	startTime := time.Now()

	for i, tc := range cases {
		result := s.runner.Run(ctx, tc)
		summary.Record(result)

		if s.progress != nil {
			s.progress.Update(summary.Passed, summary.Failed)
		}
		if s.onResult != nil {
			s.onResult(i+1, len(cases), result)
		}
	}

	if s.progress != nil {
		s.progress.Finish()
	}
	summary.Duration = time.Since(startTime)
	return summary
}
