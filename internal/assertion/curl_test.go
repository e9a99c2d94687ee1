package assertion

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCurl(t *testing.T) {
	body := `{"first_name":"O'Brien"}`
	req, err := http.NewRequest(http.MethodPost, "http://localhost:4010/v1/contacts?limit=10", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	got := ToCurl(req, body)
	want := `curl -s -X POST -H 'Accept: application/json' -H 'Content-Type: application/json' ` +
		`-d '{"first_name":"O'\''Brien"}' 'http://localhost:4010/v1/contacts?limit=10'`
	assert.Equal(t, want, got)
}

func TestToCurl_NoBody(t *testing.T) {
	req, err := http.NewRequest(http.MethodDelete, "http://localhost:4010/v1/contacts/42", nil)
	require.NoError(t, err)

	assert.Equal(t, `curl -s -X DELETE 'http://localhost:4010/v1/contacts/42'`, ToCurl(req, ""))
}
