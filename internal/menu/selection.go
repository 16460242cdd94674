package menu

import (
	"github.com/contactvanshdev-code/restaurant-website/internal/model"
	"github.com/contactvanshdev-code/restaurant-website/internal/scrolllock"
)

// Selection is the single dish open in the detail view, if any. While a
// dish is open it holds the background scroll lock.
type Selection struct {
	lock    *scrolllock.Lock
	release scrolllock.Release
	item    *model.Item
}

// NewSelection binds a selection to the page's scroll lock.
func NewSelection(lock *scrolllock.Lock) *Selection {
	return &Selection{lock: lock}
}

// Select opens item, replacing whatever was open. The lock is only taken
// on the transition from nothing to something.
func (s *Selection) Select(item model.Item) {
	if s.item == nil && s.lock != nil {
		s.release = s.lock.Acquire()
	}
	it := item
	s.item = &it
}

// Clear closes the detail view and releases the lock. Safe to call when
// nothing is open.
func (s *Selection) Clear() {
	s.item = nil
	if s.release != nil {
		s.release()
		s.release = nil
	}
}

// Active returns the open item.
func (s *Selection) Active() (model.Item, bool) {
	if s.item == nil {
		return model.Item{}, false
	}
	return *s.item, true
}

// Open reports whether a dish is open.
func (s *Selection) Open() bool {
	return s.item != nil
}
