package suite

import (
	"net/http"

	"mockcheck/internal/domain"
)

const (
	// ContactID is the id the stub mappings serve a contact for
	ContactID = "1"
	// UnknownContactID is an id the stub mappings answer with 404
	UnknownContactID = "999"
)

const (
	newContactBody     = `{"first_name":"John","last_name":"Doe","email":"john.doe@example.com","phone":"+1-555-0100"}`
	noEmailContactBody = `{"first_name":"John","last_name":"Doe"}`
	updateContactBody  = `{"first_name":"Johnny","last_name":"Doe","email":"johnny.doe@example.com"}`
)

// Contacts returns the built-in ordered suite for the contacts resource
func Contacts() []domain.TestCase {
	byID := map[string]string{"id": ContactID}

	return []domain.TestCase{
		{
			Name:    "List contacts",
			Request: domain.Request{Method: http.MethodGet, Path: "/v1/contacts"},
			Expect:  domain.Expectation{Status: http.StatusOK, Fields: []string{"data", "pagination"}},
		},
		{
			Name: "List contacts with pagination",
			Request: domain.Request{
				Method: http.MethodGet,
				Path:   "/v1/contacts",
				Query:  map[string]string{"page": "1", "limit": "10"},
			},
			Expect: domain.Expectation{Status: http.StatusOK, Fields: []string{"data", "pagination"}},
		},
		{
			Name: "Search contacts",
			Request: domain.Request{
				Method: http.MethodGet,
				Path:   "/v1/contacts",
				Query:  map[string]string{"search": "john"},
			},
			Expect: domain.Expectation{Status: http.StatusOK, Fields: []string{"data"}},
		},
		{
			Name:    "Create contact",
			Request: domain.Request{Method: http.MethodPost, Path: "/v1/contacts", Body: newContactBody},
			Expect:  domain.Expectation{Status: http.StatusCreated, Fields: []string{"id", "email"}},
		},
		{
			Name:    "Create contact without email",
			Request: domain.Request{Method: http.MethodPost, Path: "/v1/contacts", Body: noEmailContactBody},
			Expect:  domain.Expectation{Status: http.StatusBadRequest, Fields: []string{"error", "code"}},
		},
		{
			Name:    "Get contact",
			Request: domain.Request{Method: http.MethodGet, Path: "/v1/contacts/{id}", PathParams: byID},
			Expect:  domain.Expectation{Status: http.StatusOK, Fields: []string{"id", "email"}},
		},
		{
			Name: "Get unknown contact",
			Request: domain.Request{
				Method:     http.MethodGet,
				Path:       "/v1/contacts/{id}",
				PathParams: map[string]string{"id": UnknownContactID},
			},
			Expect: domain.Expectation{Status: http.StatusNotFound, Fields: []string{"error"}},
		},
		{
			Name:    "Update contact",
			Request: domain.Request{Method: http.MethodPut, Path: "/v1/contacts/{id}", PathParams: byID, Body: updateContactBody},
			Expect:  domain.Expectation{Status: http.StatusOK, Fields: []string{"id"}},
		},
		{
			Name:    "Delete contact",
			Request: domain.Request{Method: http.MethodDelete, Path: "/v1/contacts/{id}", PathParams: byID},
			Expect:  domain.Expectation{Status: http.StatusNoContent},
		},
		{
			Name:    "List contact addresses",
			Request: domain.Request{Method: http.MethodGet, Path: "/v1/contacts/{id}/addresses", PathParams: byID},
			Expect:  domain.Expectation{Status: http.StatusOK, Fields: []string{"data"}},
		},
	}
}
