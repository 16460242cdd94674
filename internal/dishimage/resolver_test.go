package dishimage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const (
	primaryURL  = "https://img.example/dish.jpg"
	fallbackURL = "https://img.example/fallback.jpg"
)

func TestFallbackExactlyOnce(t *testing.T) {
	r := NewResolver(primaryURL, fallbackURL)
	assert.Equal(t, primaryURL, r.Current())
	assert.Equal(t, StatePrimary, r.State())

	assert.True(t, r.Fail())
	assert.Equal(t, fallbackURL, r.Current())
	assert.Equal(t, StateFallback, r.State())

	assert.False(t, r.Fail(), "fallback failure is terminal")
	assert.Equal(t, fallbackURL, r.Current())
	assert.Equal(t, StateExhausted, r.State())

	assert.False(t, r.Fail())
	assert.Equal(t, fallbackURL, r.Current())
}

func TestSameSourceKeepsFallback(t *testing.T) {
	r := NewResolver(primaryURL, fallbackURL)
	r.Fail()
	r.SetSource(primaryURL)
	assert.Equal(t, fallbackURL, r.Current())

	r.SetSource("https://img.example/other.jpg")
	assert.Equal(t, "https://img.example/other.jpg", r.Current())
	assert.Equal(t, StatePrimary, r.State())
}

func TestSourceIsFallback(t *testing.T) {
	r := NewResolver(fallbackURL, fallbackURL)
	assert.Equal(t, StateFallback, r.State())
	assert.False(t, r.Fail())
	assert.Equal(t, StateExhausted, r.State())
}

type recordingProber struct {
	mu    sync.Mutex
	fail  map[string]bool
	calls []string
}

func (p *recordingProber) Probe(_ context.Context, url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, url)
	if p.fail[url] {
		return errors.New("load failed")
	}
	return nil
}

func TestResolvePrimaryLoads(t *testing.T) {
	p := &recordingProber{}
	r := NewResolver(primaryURL, fallbackURL)
	require.NoError(t, Resolve(context.Background(), p, r))
	assert.Equal(t, []string{primaryURL}, p.calls)
	assert.Equal(t, StatePrimary, r.State())
}

func TestResolveFallsBack(t *testing.T) {
	p := &recordingProber{fail: map[string]bool{primaryURL: true}}
	r := NewResolver(primaryURL, fallbackURL)
	require.NoError(t, Resolve(context.Background(), p, r))
	assert.Equal(t, []string{primaryURL, fallbackURL}, p.calls)
	assert.Equal(t, fallbackURL, r.Current())
}

func TestResolveDoesNotLoop(t *testing.T) {
	p := &recordingProber{fail: map[string]bool{primaryURL: true, fallbackURL: true}}
	r := NewResolver(primaryURL, fallbackURL)
	require.Error(t, Resolve(context.Background(), p, r))
	assert.Equal(t, []string{primaryURL, fallbackURL}, p.calls)
	assert.Equal(t, StateExhausted, r.State())
}

func TestHTTPProber(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		switch r.URL.Path {
		case "/ok.jpg":
			w.Header().Set("Content-Type", "image/jpeg")
		case "/page":
			w.Header().Set("Content-Type", "text/html")
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	p := NewHTTPProber(2 * time.Second)
	p.Client = srv.Client()
	ctx := context.Background()

	assert.NoError(t, p.Probe(ctx, srv.URL+"/ok.jpg"))
	assert.ErrorContains(t, p.Probe(ctx, srv.URL+"/missing.jpg"), "status 404")
	assert.ErrorIs(t, p.Probe(ctx, srv.URL+"/page"), ErrNotImage)

	r := NewResolver(srv.URL+"/missing.jpg", srv.URL+"/ok.jpg")
	require.NoError(t, Resolve(ctx, p, r))
	assert.Equal(t, StateFallback, r.State())

	srv.Client().CloseIdleConnections()
}

func TestResolveStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := ProberFunc(func(ctx context.Context, _ string) error { return ctx.Err() })
	r := NewResolver(primaryURL, fallbackURL)
	assert.ErrorIs(t, Resolve(ctx, p, r), context.Canceled)
	assert.Equal(t, StatePrimary, r.State(), "cancellation is not a load failure")
}
