// Package mocktest provides an in-process stub of the contacts API for tests.
package mocktest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
)

// HealthPath is the admin endpoint served by the stub
const HealthPath = "/__admin/health"

// Server is a stub contacts API that records the requests it receives
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Recorded
}

// Recorded is one request seen by the stub
type Recorded struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

// NewContactsServer starts a stub whose canned responses satisfy the
// built-in contacts suite. Contact "1" exists; every other id is unknown.
func NewContactsServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{}
	s.Server = httptest.NewServer(s.recording(ContactsRouter()))
	t.Cleanup(s.Close)
	return s
}

// NewServer starts a stub serving the given handler
func NewServer(t testing.TB, handler http.Handler) *Server {
	t.Helper()
	s := &Server{}
	s.Server = httptest.NewServer(s.recording(handler))
	t.Cleanup(s.Close)
	return s
}

// Requests returns a copy of the requests received so far
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Recorded, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) recording(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		s.mu.Lock()
		s.requests = append(s.requests, Recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   string(body),
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// ContactsRouter returns the stub mappings of the contacts API
func ContactsRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc(HealthPath, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "healthy"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/v1/contacts", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"data":       []any{contact("1")},
			"pagination": map[string]any{"page": 1, "limit": 10, "total": 1},
		})
	}).Methods(http.MethodGet)

	r.HandleFunc("/v1/contacts", func(w http.ResponseWriter, req *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
			return
		}
		if _, ok := payload["email"]; !ok {
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "email is required")
			return
		}
		payload["id"] = "2"
		writeJSON(w, http.StatusCreated, payload)
	}).Methods(http.MethodPost)

	r.HandleFunc("/v1/contacts/{id}", withContact(func(w http.ResponseWriter, _ *http.Request, id string) {
		writeJSON(w, http.StatusOK, contact(id))
	})).Methods(http.MethodGet)

	r.HandleFunc("/v1/contacts/{id}", withContact(func(w http.ResponseWriter, _ *http.Request, id string) {
		writeJSON(w, http.StatusOK, contact(id))
	})).Methods(http.MethodPut)

	r.HandleFunc("/v1/contacts/{id}", withContact(func(w http.ResponseWriter, _ *http.Request, _ string) {
		w.WriteHeader(http.StatusNoContent)
	})).Methods(http.MethodDelete)

	r.HandleFunc("/v1/contacts/{id}/addresses", withContact(func(w http.ResponseWriter, _ *http.Request, _ string) {
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []any{map[string]any{"street": "1 Main St", "city": "Springfield"}},
		})
	})).Methods(http.MethodGet)

	return r
}

func withContact(fn func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if id != "1" {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "contact not found")
			return
		}
		fn(w, r, id)
	}
}

func contact(id string) map[string]any {
	return map[string]any{
		"id":         id,
		"first_name": "John",
		"last_name":  "Doe",
		"email":      "john.doe@example.com",
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{"error": message, "code": code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
