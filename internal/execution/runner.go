package execution

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mockcheck/internal/assertion"
	"mockcheck/internal/config"
	"mockcheck/internal/domain"
)

// Runner executes a single test case: one request, one verdict
type Runner struct {
	config  *config.Config
	client  *http.Client
	checker *assertion.Checker
}

// NewRunner creates a new Runner. The client carries no timeout.
func NewRunner(cfg *config.Config, checker *assertion.Checker) *Runner {
	return &Runner{
		config:  cfg,
		client:  &http.Client{},
		checker: checker,
	}
}

// BuildURL joins the base URL with the case path, substituting {name}
// placeholders and appending the encoded query string.
func (r *Runner) BuildURL(req domain.Request) string {
	path := req.Path
	for name, value := range req.PathParams {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}

	u := r.config.GetBaseURL() + path
	if len(req.Query) > 0 {
		values := url.Values{}
		for k, v := range req.Query {
			values.Set(k, v)
		}
		u += "?" + values.Encode()
	}
	return u
}

// NewRequest builds the HTTP request for a case
func (r *Runner) NewRequest(ctx context.Context, tc domain.TestCase) (*http.Request, error) {
	var body io.Reader
	if tc.Request.Body != "" {
		body = strings.NewReader(tc.Request.Body)
	}

	req, err := http.NewRequestWithContext(ctx, tc.Request.Method, r.BuildURL(tc.Request), body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if tc.Request.Body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.Request.Headers {
		req.Header.Set(key, value)
	}
	return req, nil
}

// Run issues the case's request and evaluates the response
func (r *Runner) Run(ctx context.Context, tc domain.TestCase) domain.TestResult {
	result := domain.TestResult{
		Name:     tc.Name,
		Method:   tc.Request.Method,
		URL:      r.BuildURL(tc.Request),
		Expected: assertion.Describe(tc.Expect),
	}

	req, err := r.NewRequest(ctx, tc)
	if err != nil {
		result.Error = fmt.Sprintf("build request: %v", err)
		result.Actual = "request error: " + result.Error
		return result
	}
	result.Curl = assertion.ToCurl(req, tc.Request.Body)

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		result.Duration = time.Since(start)
		result.Error = err.Error()
		result.Actual = "request error: " + result.Error
		return result
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	result.Duration = time.Since(start)
	result.Status = resp.StatusCode
	if err != nil {
		result.Error = fmt.Sprintf("read response: %v", err)
		result.Actual = fmt.Sprintf("status %d, %s", resp.StatusCode, result.Error)
		return result
	}
	result.Body = string(body)

	outcome := r.checker.Check(tc.Expect, resp.StatusCode, result.Body)
	result.Passed = outcome.Passed
	result.Expected = outcome.Expected
	result.Actual = outcome.Actual
	return result
}
