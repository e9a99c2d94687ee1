package domain

import "time"

// TestResult represents the outcome of executing one test case
type TestResult struct {
	Name     string        `json:"name"`
	Passed   bool          `json:"passed"`
	Expected string        `json:"expected"` // Human readable description of what was expected
	Actual   string        `json:"actual"`   // Human readable description of what was observed
	Method   string        `json:"method"`
	URL      string        `json:"url"`
	Status   int           `json:"status"` // 0 when no response was received
	Body     string        `json:"body,omitempty"`
	Curl     string        `json:"curl"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
	Resolved bool          `json:"resolved,omitempty"` // Marked as handled in the failures viewer
}

// TestResultsMeta contains metadata about a test run
type TestResultsMeta struct {
	RunID           string  `json:"run_id"`
	BaseURL         string  `json:"base_url"`
	Total           int     `json:"total"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// TestResultsOutput is the complete output structure for a saved run
type TestResultsOutput struct {
	Meta    TestResultsMeta `json:"meta"`
	Results []TestResult    `json:"results"`
}

// Failures returns only the failed results, in run order
func (o *TestResultsOutput) Failures() []TestResult {
	var failures []TestResult
	for _, r := range o.Results {
		if !r.Passed {
			failures = append(failures, r)
		}
	}
	return failures
}
