package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSummary_Record(t *testing.T) {
	var s RunSummary
	outcomes := []bool{true, false, true, true, false}
	for i, passed := range outcomes {
		s.Record(TestResult{Name: string(rune('a' + i)), Passed: passed})
		assert.Equal(t, i+1, s.Total())
		assert.Equal(t, s.Total(), s.Passed+s.Failed)
	}

	assert.Equal(t, 3, s.Passed)
	assert.Equal(t, 2, s.Failed)
	assert.False(t, s.Success())

	failures := s.Failures()
	if assert.Len(t, failures, 2) {
		assert.Equal(t, "b", failures[0].Name)
		assert.Equal(t, "e", failures[1].Name)
	}
}

func TestRunSummary_Empty(t *testing.T) {
	var s RunSummary
	assert.Equal(t, 0, s.Total())
	assert.True(t, s.Success())
	assert.Empty(t, s.Failures())
}

func TestExpectation_Markers(t *testing.T) {
	e := Expectation{
		Status:   200,
		Fields:   []string{"data", "pagination"},
		Contains: []string{"john@example.com"},
	}
	assert.Equal(t, []string{`"data"`, `"pagination"`, "john@example.com"}, e.Markers())
	assert.Empty(t, Expectation{Status: 204}.Markers())
}
