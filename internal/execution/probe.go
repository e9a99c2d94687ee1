package execution

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"mockcheck/internal/config"
)

// ErrUnreachable is returned when the health probe gets no HTTP response
var ErrUnreachable = errors.New("mock server unreachable")

// Prober checks that the mock server answers before any case runs
type Prober struct {
	client *http.Client
	url    string
}

// NewProber creates a Prober whose only timeout is the configured connect timeout
func NewProber(cfg *config.Config) *Prober {
	dialer := &net.Dialer{Timeout: cfg.ProbeTimeout}
	return &Prober{
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:       http.ProxyFromEnvironment,
				DialContext: dialer.DialContext,
			},
		},
		url: cfg.GetHealthURL(),
	}
}

// URL returns the probed endpoint
func (p *Prober) URL() string {
	return p.url
}

// Probe issues a single GET to the health endpoint. Any HTTP response counts
// as reachable and its status is returned; it is never retried.
func (p *Prober) Probe(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return 0, fmt.Errorf("build probe request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w at %s: %v", ErrUnreachable, p.url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
