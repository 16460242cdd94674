package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/contactvanshdev-code/restaurant-website/internal/catalog"
	"github.com/contactvanshdev-code/restaurant-website/internal/dishimage"
	"github.com/contactvanshdev-code/restaurant-website/internal/model"
)

// imageProbedMsg reports one probe. URL identifies the attempt so a
// result for a superseded URL can be dropped.
type imageProbedMsg struct {
	ItemID string
	URL    string
	Err    error
}

// imageState keeps one fallback resolver per dish for the session.
type imageState struct {
	prober  dishimage.Prober // nil disables probing
	timeout time.Duration
	logger  *zap.Logger

	resolvers map[string]*dishimage.Resolver
	pending   map[string]bool
	loaded    map[string]bool
}

func newImageState(p dishimage.Prober, timeout time.Duration, logger *zap.Logger) *imageState {
	return &imageState{
		prober:    p,
		timeout:   timeout,
		logger:    logger,
		resolvers: make(map[string]*dishimage.Resolver),
		pending:   make(map[string]bool),
		loaded:    make(map[string]bool),
	}
}

func (s *imageState) resolver(it model.Item) *dishimage.Resolver {
	r, ok := s.resolvers[it.ID]
	if !ok {
		r = dishimage.NewResolver(it.Image, catalog.FallbackImageURL)
		s.resolvers[it.ID] = r
		return r
	}
	r.SetSource(it.Image)
	return r
}

// ensure starts a probe for the dish photo unless one already settled or
// is in flight.
func (s *imageState) ensure(it model.Item) tea.Cmd {
	r := s.resolver(it)
	if s.prober == nil || s.loaded[it.ID] || s.pending[it.ID] || r.State() == dishimage.StateExhausted {
		return nil
	}
	s.pending[it.ID] = true
	return s.probe(it.ID, r.Current())
}

func (s *imageState) probe(id, url string) tea.Cmd {
	p, timeout := s.prober, s.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return imageProbedMsg{ItemID: id, URL: url, Err: p.Probe(ctx, url)}
	}
}

// handle applies a probe result. A failed primary swaps to the fallback
// and probes it; a failed fallback is final.
func (s *imageState) handle(msg imageProbedMsg) tea.Cmd {
	r, ok := s.resolvers[msg.ItemID]
	if !ok || r.Current() != msg.URL {
		return nil
	}
	if msg.Err == nil {
		s.pending[msg.ItemID] = false
		s.loaded[msg.ItemID] = true
		return nil
	}
	if r.Fail() {
		s.logger.Info("dish photo failed, using fallback",
			zap.String("item", msg.ItemID), zap.String("url", msg.URL), zap.Error(msg.Err))
		return s.probe(msg.ItemID, r.Current())
	}
	s.pending[msg.ItemID] = false
	s.logger.Warn("fallback photo failed",
		zap.String("item", msg.ItemID), zap.String("url", msg.URL), zap.Error(msg.Err))
	return nil
}

// url is the photo the card should show.
func (s *imageState) url(it model.Item) string {
	if r, ok := s.resolvers[it.ID]; ok {
		return r.Current()
	}
	return it.Image
}

func (s *imageState) describe(id string) string {
	r, ok := s.resolvers[id]
	switch {
	case !ok || s.prober == nil:
		return "(unchecked)"
	case r.State() == dishimage.StateExhausted:
		return "(unavailable)"
	case s.pending[id]:
		return "(loading)"
	case r.State() == dishimage.StateFallback:
		return "(fallback)"
	}
	return "(loaded)"
}
