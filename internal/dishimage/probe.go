package dishimage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Prober checks whether an image URL loads.
type Prober interface {
	Probe(ctx context.Context, url string) error
}

// ProberFunc adapts a plain function to Prober.
type ProberFunc func(ctx context.Context, url string) error

// Probe calls f.
func (f ProberFunc) Probe(ctx context.Context, url string) error { return f(ctx, url) }

// ErrNotImage is returned when the server answers with something other
// than an image.
var ErrNotImage = errors.New("response is not an image")

// HTTPProber probes with a HEAD request.
type HTTPProber struct {
	Client  *http.Client
	Timeout time.Duration
}

// NewHTTPProber returns a prober with a per-request timeout.
func NewHTTPProber(timeout time.Duration) *HTTPProber {
	return &HTTPProber{Client: http.DefaultClient, Timeout: timeout}
}

// Probe implements Prober.
func (p *HTTPProber) Probe(ctx context.Context, url string) error {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("head %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("head %s: status %d", url, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("head %s: %w (%s)", url, ErrNotImage, ct)
	}
	return nil
}

// Resolve drives a resolver to a settled state: probe the current URL,
// and on failure swap once and probe the fallback. It returns the error
// of the last failed probe, or nil if Current() loaded.
func Resolve(ctx context.Context, p Prober, r *Resolver) error {
	for {
		err := p.Probe(ctx, r.Current())
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !r.Fail() {
			return err
		}
	}
}
