package filemutex

import (
	"fmt"
	"time"
)

// Handle represents an acquired lock on a target path. It must be given back
// to Manager.Release once the caller is done with the resource.
type Handle struct {
	Target   string
	Sharable bool
	mu       *FileMutex
}

// Manager hands out file locks by target path with a bounded acquisition
// timeout, for callers that want acquire/release semantics instead of owning
// a FileMutex directly. Each acquisition gets its own FileMutex, so a Manager
// may be shared between goroutines.
type Manager struct {
	opts []Option
}

// NewManager initializes and returns a new Manager. Options are applied to
// every mutex it constructs.
func NewManager(opts ...Option) *Manager {
	return &Manager{opts: opts}
}

// Acquire obtains an exclusive lock on target, waiting up to timeout. It
// returns ErrLockTimeout when the timeout elapses before the lock is free.
func (m *Manager) Acquire(target string, timeout time.Duration) (*Handle, error) {
	return m.acquire(target, timeout, false)
}

// AcquireSharable obtains a sharable lock on target, waiting up to timeout.
// It returns ErrLockTimeout when the timeout elapses while an exclusive
// holder remains.
func (m *Manager) AcquireSharable(target string, timeout time.Duration) (*Handle, error) {
	return m.acquire(target, timeout, true)
}

func (m *Manager) acquire(target string, timeout time.Duration, sharable bool) (*Handle, error) {
	fm, err := New(target, m.opts...)
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(timeout)
	var locked bool
	if sharable {
		locked, err = fm.TryRLockUntil(deadline)
	} else {
		locked, err = fm.TryLockUntil(deadline)
	}
	if err != nil {
		_ = fm.Close()
		return nil, fmt.Errorf("acquiring file lock for %s: %w", target, err)
	}
	if !locked {
		_ = fm.Close()
		return nil, ErrLockTimeout
	}

	return &Handle{Target: target, Sharable: sharable, mu: fm}, nil
}

// Release releases the lock held by h and closes its handle. Releasing an
// already-released handle is a no-op.
func (m *Manager) Release(h *Handle) error {
	if h == nil {
		return ErrNilHandle
	}
	if h.mu == nil {
		return nil
	}
	mu := h.mu
	h.mu = nil
	if err := mu.Close(); err != nil {
		return fmt.Errorf("releasing file lock for %s: %w", h.Target, err)
	}
	return nil
}
