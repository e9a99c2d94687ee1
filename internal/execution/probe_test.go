package execution

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockcheck/internal/config"
	"mockcheck/internal/mocktest"
)

func newProber(t *testing.T, baseURL string) *Prober {
	t.Helper()
	cfg := config.New()
	cfg.ProbeTimeout = 500 * time.Millisecond
	require.NoError(t, cfg.ApplyFlags(config.Flags{BaseURL: baseURL}))
	return NewProber(cfg)
}

func TestProber_Probe(t *testing.T) {
	srv := mocktest.NewContactsServer(t)
	p := newProber(t, srv.URL)

	status, err := p.Probe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, srv.URL+mocktest.HealthPath, p.URL())
}

func TestProber_AnyResponseIsReachable(t *testing.T) {
	srv := mocktest.NewServer(t, http.NotFoundHandler())
	p := newProber(t, srv.URL)

	status, err := p.Probe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestProber_Unreachable(t *testing.T) {
	srv := mocktest.NewContactsServer(t)
	baseURL := srv.URL
	srv.Close()

	p := newProber(t, baseURL)
	_, err := p.Probe(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreachable))
	assert.Empty(t, srv.Requests())
}
