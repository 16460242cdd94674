package scrolllock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcquireRelease(t *testing.T) {
	var l Lock
	assert.False(t, l.Suspended())

	release := l.Acquire()
	assert.True(t, l.Suspended())
	assert.Equal(t, 1, l.Holders())

	release()
	assert.False(t, l.Suspended())
	assert.Equal(t, 0, l.Holders())
}

func TestReleaseIsIdempotent(t *testing.T) {
	var l Lock
	outer := l.Acquire()
	inner := l.Acquire()

	inner()
	inner()
	assert.True(t, l.Suspended(), "outer holder still has the lock")
	assert.Equal(t, 1, l.Holders())

	outer()
	outer()
	assert.False(t, l.Suspended())
	assert.Equal(t, 0, l.Holders())
}

func TestNestedRestoresPriorState(t *testing.T) {
	var l Lock
	drawer := l.Acquire()
	modal := l.Acquire()

	modal()
	assert.True(t, l.Suspended(), "closing the modal keeps the drawer's suspension")

	drawer()
	assert.False(t, l.Suspended())
}

func TestOutOfOrderReleaseKeepsLock(t *testing.T) {
	var l Lock
	drawer := l.Acquire()
	modal := l.Acquire()

	drawer()
	assert.True(t, l.Suspended(), "modal still holds the lock")
	assert.Equal(t, 1, l.Holders())

	modal()
	assert.False(t, l.Suspended())
	assert.Equal(t, 0, l.Holders())
}
