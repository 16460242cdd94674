// Package dishimage resolves which photo a dish card shows. A dish starts
// on its own photo; if that fails to load it switches to the house
// fallback photo exactly once. A failing fallback is final.
package dishimage

// State is where a Resolver currently stands.
type State int

const (
	// StatePrimary means the dish's own photo is being shown.
	StatePrimary State = iota
	// StateFallback means the primary failed and the fallback is shown.
	StateFallback
	// StateExhausted means the fallback failed too. No further swaps.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StatePrimary:
		return "primary"
	case StateFallback:
		return "fallback"
	case StateExhausted:
		return "exhausted"
	}
	return "unknown"
}

// Resolver is the per-image fallback state machine.
type Resolver struct {
	source   string
	fallback string
	current  string
	state    State
}

// NewResolver starts on source.
func NewResolver(source, fallback string) *Resolver {
	r := &Resolver{fallback: fallback}
	r.SetSource(source)
	return r
}

// SetSource points the resolver at a new photo. Assigning the same source
// again keeps the current state, so a fallback isn't undone by a redraw.
func (r *Resolver) SetSource(source string) {
	if source == r.source && r.current != "" {
		return
	}
	r.source = source
	r.current = source
	r.state = StatePrimary
	if source == r.fallback {
		r.state = StateFallback
	}
}

// Current is the URL that should be displayed.
func (r *Resolver) Current() string { return r.current }

// State reports the resolver's position.
func (r *Resolver) State() State { return r.state }

// Fail records that Current() failed to load. It returns true when it
// swapped to the fallback, which then needs loading; false means there is
// nothing left to try.
func (r *Resolver) Fail() bool {
	if r.current != r.fallback {
		r.current = r.fallback
		r.state = StateFallback
		return true
	}
	r.state = StateExhausted
	return false
}
