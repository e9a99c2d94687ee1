package execution

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockcheck/internal/assertion"
	"mockcheck/internal/config"
	"mockcheck/internal/domain"
	"mockcheck/internal/mocktest"
)

func newRunner(t *testing.T, baseURL string) *Runner {
	t.Helper()
	cfg := config.New()
	require.NoError(t, cfg.ApplyFlags(config.Flags{BaseURL: baseURL}))
	return NewRunner(cfg, assertion.NewChecker())
}

func TestRunner_BuildURL(t *testing.T) {
	r := newRunner(t, "http://localhost:4010/")

	tests := []struct {
		name string
		req  domain.Request
		want string
	}{
		{
			name: "plain path",
			req:  domain.Request{Path: "/v1/contacts"},
			want: "http://localhost:4010/v1/contacts",
		},
		{
			name: "path params substituted and escaped",
			req:  domain.Request{Path: "/v1/contacts/{id}/addresses", PathParams: map[string]string{"id": "a b"}},
			want: "http://localhost:4010/v1/contacts/a%20b/addresses",
		},
		{
			name: "query sorted and encoded",
			req:  domain.Request{Path: "/v1/contacts", Query: map[string]string{"search": "john doe", "limit": "10", "page": "1"}},
			want: "http://localhost:4010/v1/contacts?limit=10&page=1&search=john+doe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.BuildURL(tt.req))
		})
	}
}

func TestRunner_Run(t *testing.T) {
	srv := mocktest.NewContactsServer(t)
	r := newRunner(t, srv.URL)
	ctx := context.Background()

	t.Run("list contacts passes", func(t *testing.T) {
		result := r.Run(ctx, domain.TestCase{
			Name:    "List contacts",
			Request: domain.Request{Method: http.MethodGet, Path: "/v1/contacts"},
			Expect:  domain.Expectation{Status: http.StatusOK, Fields: []string{"data", "pagination"}},
		})
		assert.True(t, result.Passed, result.Actual)
		assert.Equal(t, http.StatusOK, result.Status)
		assert.Contains(t, result.Curl, "curl -s -X GET")
		assert.Empty(t, result.Error)
	})

	t.Run("create without email expects validation error", func(t *testing.T) {
		result := r.Run(ctx, domain.TestCase{
			Name:    "Create contact without email",
			Request: domain.Request{Method: http.MethodPost, Path: "/v1/contacts", Body: `{"first_name":"John"}`},
			Expect:  domain.Expectation{Status: http.StatusBadRequest, Fields: []string{"error", "code"}},
		})
		assert.True(t, result.Passed, result.Actual)
	})

	t.Run("wrong expected status shows literal codes", func(t *testing.T) {
		result := r.Run(ctx, domain.TestCase{
			Name:    "Create contact",
			Request: domain.Request{Method: http.MethodPost, Path: "/v1/contacts", Body: `{"email":"a@b.c"}`},
			Expect:  domain.Expectation{Status: http.StatusBadRequest, Fields: []string{"error", "code"}},
		})
		assert.False(t, result.Passed)
		assert.Equal(t, "status 400", result.Expected)
		assert.Equal(t, "status 201", result.Actual)
	})

	t.Run("missing field fails", func(t *testing.T) {
		result := r.Run(ctx, domain.TestCase{
			Name:    "Addresses",
			Request: domain.Request{Method: http.MethodGet, Path: "/v1/contacts/{id}/addresses", PathParams: map[string]string{"id": "1"}},
			Expect:  domain.Expectation{Status: http.StatusOK, Fields: []string{"data", "pagination"}},
		})
		assert.False(t, result.Passed)
		assert.Equal(t, `status 200, missing "pagination"`, result.Actual)
	})

	t.Run("headers and body reach the server", func(t *testing.T) {
		r.Run(ctx, domain.TestCase{
			Name: "Update",
			Request: domain.Request{
				Method:     http.MethodPut,
				Path:       "/v1/contacts/{id}",
				PathParams: map[string]string{"id": "1"},
				Headers:    map[string]string{"X-Trace": "abc"},
				Body:       `{"first_name":"Jane"}`,
			},
			Expect: domain.Expectation{Status: http.StatusOK},
		})

		reqs := srv.Requests()
		last := reqs[len(reqs)-1]
		assert.Equal(t, http.MethodPut, last.Method)
		assert.Equal(t, "/v1/contacts/1", last.Path)
		assert.Equal(t, "abc", last.Header.Get("X-Trace"))
		assert.Equal(t, "application/json", last.Header.Get("Content-Type"))
		assert.Equal(t, `{"first_name":"Jane"}`, last.Body)
	})
}

func TestRunner_Run_TransportError(t *testing.T) {
	srv := mocktest.NewContactsServer(t)
	baseURL := srv.URL
	srv.Close()

	r := newRunner(t, baseURL)
	result := r.Run(context.Background(), domain.TestCase{
		Name:    "List contacts",
		Request: domain.Request{Method: http.MethodGet, Path: "/v1/contacts"},
		Expect:  domain.Expectation{Status: http.StatusOK},
	})

	assert.False(t, result.Passed)
	assert.Zero(t, result.Status)
	assert.NotEmpty(t, result.Error)
	assert.Contains(t, result.Actual, "request error")
	assert.Equal(t, "status 200", result.Expected)
}

func TestRunner_Run_InvalidMethod(t *testing.T) {
	r := newRunner(t, "http://localhost:4010")
	result := r.Run(context.Background(), domain.TestCase{
		Name:    "bad",
		Request: domain.Request{Method: "BAD METHOD", Path: "/v1/contacts"},
		Expect:  domain.Expectation{Status: http.StatusOK},
	})
	assert.False(t, result.Passed)
	assert.Contains(t, result.Error, "build request")
}
