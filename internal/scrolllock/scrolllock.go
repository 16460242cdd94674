// Package scrolllock models "background scrolling is suspended" as a
// scoped resource. Whoever opens a modal or drawer acquires the lock and
// gets back a release func. Scrolling stays suspended until every holder
// has released, in any order.
package scrolllock

// Lock tracks whether background scrolling is suspended. The zero value
// is an unlocked Lock. It is not safe for concurrent use; the UI event
// loop is the only caller.
type Lock struct {
	holders int
}

// Release undoes one Acquire. Calling it more than once is a no-op.
type Release func()

// Acquire suspends background scrolling and returns the func that gives
// this hold back.
func (l *Lock) Acquire() Release {
	l.holders++

	released := false
	return func() {
		if released {
			return
		}
		released = true
		l.holders--
	}
}

// Suspended reports whether scrolling is currently disabled.
func (l *Lock) Suspended() bool {
	return l.holders > 0
}

// Holders is the number of outstanding acquisitions.
func (l *Lock) Holders() int {
	return l.holders
}
