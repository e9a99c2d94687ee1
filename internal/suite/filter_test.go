package suite

import (
	"testing"

	"mockcheck/internal/domain"
)

func named(names ...string) []domain.TestCase {
	cases := make([]domain.TestCase, len(names))
	for i, n := range names {
		cases[i] = domain.TestCase{Name: n}
	}
	return cases
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		cases    []domain.TestCase
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			cases:    named("List contacts", "Create contact", "Delete contact"),
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches prefix",
			cases:    named("List contacts", "Create contact", "Create contact without email"),
			pattern:  "Create*",
			expected: 2,
		},
		{
			name:     "wildcard pattern matches substring",
			cases:    named("List contacts", "List contact addresses", "Get contact"),
			pattern:  "*address*",
			expected: 1,
		},
		{
			name:     "simple contains match is case insensitive",
			cases:    named("List contacts", "Get unknown contact", "Get contact"),
			pattern:  "UNKNOWN",
			expected: 1,
		},
		{
			name:     "no matches",
			cases:    named("List contacts", "Get contact"),
			pattern:  "*invoice*",
			expected: 0,
		},
		{
			name:     "name containing a slash",
			cases:    named("GET /v1/contacts", "GET /v1/contacts/{id}/addresses"),
			pattern:  "*/addresses",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.cases, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty case list", func(t *testing.T) {
		result := filter.FilterByName(nil, "*contact*")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("pattern with multiple wildcards", func(t *testing.T) {
		cases := named("Create contact", "Create contact without email", "Get contact")
		result := filter.FilterByName(cases, "*Create*contact*")
		if len(result) != 2 {
			t.Errorf("expected 2 matches, got %d", len(result))
		}
	})

	t.Run("order is preserved", func(t *testing.T) {
		cases := named("b contact", "a contact", "c contact")
		result := filter.FilterByName(cases, "*contact")
		if len(result) != 3 || result[0].Name != "b contact" || result[2].Name != "c contact" {
			t.Errorf("unexpected order: %+v", result)
		}
	})
}
