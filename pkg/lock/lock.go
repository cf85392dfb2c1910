package lock

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another run holds the lock
var ErrLocked = errors.New("another sync run is in progress")

// Lock keeps two sync runs from mutating the PVR at the same time
type Lock struct {
	path  string
	flock *flock.Flock
}

// New returns a lock on path. An empty path yields a lock that always succeeds.
func New(path string) *Lock {
	l := &Lock{path: path}
	if path != "" {
		l.flock = flock.New(path)
	}
	return l
}

func (l *Lock) Path() string {
	return l.path
}

// Acquire takes the lock without blocking. The returned func releases it.
func (l *Lock) Acquire() (func() error, error) {
	if l.flock == nil {
		return func() error { return nil }, nil
	}

	ok, err := l.flock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, l.path)
	}

	return l.flock.Unlock, nil
}
