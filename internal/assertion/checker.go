package assertion

import (
	"fmt"
	"strings"

	"mockcheck/internal/domain"
)

// Outcome is the verdict for one response
type Outcome struct {
	Passed   bool
	Expected string
	Actual   string
	Missing  []string // Body markers that were not found
}

// Checker evaluates responses against test case expectations
type Checker struct{}

// NewChecker creates a new Checker
func NewChecker() *Checker {
	return &Checker{}
}

// Check compares the status code first; body markers are only inspected when it matches.
func (c *Checker) Check(expect domain.Expectation, status int, body string) Outcome {
	markers := expect.Markers()
	expected := Describe(expect)

	if status != expect.Status {
		return Outcome{
			Passed:   false,
			Expected: fmt.Sprintf("status %d", expect.Status),
			Actual:   fmt.Sprintf("status %d", status),
		}
	}

	var missing []string
	for _, marker := range markers {
		if !strings.Contains(body, marker) {
			missing = append(missing, marker)
		}
	}

	if len(missing) > 0 {
		return Outcome{
			Passed:   false,
			Expected: expected,
			Actual:   fmt.Sprintf("status %d, missing %s", status, strings.Join(missing, ", ")),
			Missing:  missing,
		}
	}

	return Outcome{
		Passed:   true,
		Expected: expected,
		Actual:   fmt.Sprintf("status %d", status),
	}
}

// Describe renders an expectation, e.g. `status 200 with "data", "pagination"`
func Describe(expect domain.Expectation) string {
	markers := expect.Markers()
	if len(markers) == 0 {
		return fmt.Sprintf("status %d", expect.Status)
	}
	return fmt.Sprintf("status %d with %s", expect.Status, strings.Join(markers, ", "))
}
