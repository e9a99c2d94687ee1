package domain

import "time"

// RunSummary aggregates the results of one run. Passed+Failed always equals Total.
type RunSummary struct {
	Results  []TestResult
	Passed   int
	Failed   int
	Duration time.Duration
}

// Record appends a result and updates the counters
func (s *RunSummary) Record(result TestResult) {
	s.Results = append(s.Results, result)
	if result.Passed {
		s.Passed++
	} else {
		s.Failed++
	}
}

// Total returns the number of recorded results
func (s *RunSummary) Total() int {
	return s.Passed + s.Failed
}

// Success reports whether no recorded case failed
func (s *RunSummary) Success() bool {
	return s.Failed == 0
}

// Failures returns the failed results in run order
func (s *RunSummary) Failures() []TestResult {
	var failures []TestResult
	for _, r := range s.Results {
		if !r.Passed {
			failures = append(failures, r)
		}
	}
	return failures
}
