// Package exitcodes defines the process exit codes used by mockcheck.
package exitcodes

import "fmt"

// Success (0) is used when every case passed. Failure (1) covers failed
// cases, an unreachable target and invalid invocations alike.
const (
	Success = 0
	Failure = 1
)

// FromFailures maps the failed case count to an exit code
func FromFailures(failed int) int {
	if failed == 0 {
		return Success
	}
	return Failure
}

// ExitError carries an exit code up to main. Err may be nil when the
// reason has already been reported to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
