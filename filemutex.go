// Package filemutex provides a mutex backed by an OS advisory lock on a
// companion lock file, for synchronizing access to a resource across
// processes.
//
// A FileMutex is constructed over a target path. The lock-file path is the
// target path plus a suffix (".lock" by default); the file is created if it
// does not exist and persists on disk until removed with Remove. Exclusive
// and sharable (reader) ownership are supported, each with blocking,
// non-blocking and deadline-bounded acquisition.
//
// The lock is advisory: it constrains only processes that take the same lock,
// not arbitrary I/O on the target. Ordering among waiters is whatever the
// host OS provides; there is no fairness guarantee, and exclusive waiters can
// starve under sustained sharable contention.
//
// A FileMutex synchronizes separate processes, not goroutines sharing one
// instance. Callers that share an instance between goroutines must guard it
// with their own sync.Mutex. A FileMutex must not be copied after first use.
package filemutex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"

	"github.com/stryku/file-mutex/internal/fsutil"
)

// DefaultSuffix is appended to the target path to derive the lock-file path
// when no WithSuffix option is given.
const DefaultSuffix = ".lock"

// pollInterval is the interval between acquisition attempts in the timed and
// context-bounded variants.
const pollInterval = 10 * time.Millisecond

type options struct {
	suffix string
}

// Option configures construction of a FileMutex.
type Option func(*options)

// WithSuffix overrides the suffix appended to the target path. All processes
// contending on the same resource must agree on the suffix.
func WithSuffix(suffix string) Option {
	return func(o *options) { o.suffix = suffix }
}

func newOptions(opts []Option) options {
	o := options{suffix: DefaultSuffix}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// FileMutex is a handle over a per-resource lock file. The zero value is
// empty: it owns no lock handle and every locking operation on it returns
// ErrNoHandle. Use New to obtain a usable instance.
type FileMutex struct {
	path string
	fl   osLock
}

// New creates a FileMutex over target. The lock file at target+suffix is
// created if absent (opened for append and closed immediately, leaving any
// existing content alone) and an advisory-lock handle is bound to it. No lock
// is acquired yet.
func New(target string, opts ...Option) (*FileMutex, error) {
	if target == "" {
		return nil, ErrTargetRequired
	}
	o := newOptions(opts)
	lockPath := target + o.suffix
	if err := fsutil.EnsureFile(lockPath); err != nil {
		return nil, fmt.Errorf("creating lock file %s: %w", lockPath, err)
	}
	return &FileMutex{path: lockPath, fl: flock.New(lockPath)}, nil
}

// Path returns the derived lock-file path.
func (m *FileMutex) Path() string {
	return m.path
}

// Lock acquires exclusive ownership, blocking until no other holder (exclusive
// or sharable) remains. Contention blocks; only OS-level failure is an error.
func (m *FileMutex) Lock() error {
	if m.fl == nil {
		return ErrNoHandle
	}
	if err := m.fl.Lock(); err != nil {
		return fmt.Errorf("acquiring exclusive lock on %s: %w", m.path, err)
	}
	return nil
}

// TryLock attempts exclusive ownership without blocking. It returns false
// when another holder exists, and an error only on OS-level failure.
func (m *FileMutex) TryLock() (bool, error) {
	if m.fl == nil {
		return false, ErrNoHandle
	}
	locked, err := m.fl.TryLock()
	if err != nil {
		return false, fmt.Errorf("acquiring exclusive lock on %s: %w", m.path, err)
	}
	return locked, nil
}

// TryLockUntil attempts exclusive ownership, retrying until deadline. It
// returns true once acquired, false if the deadline passes first. A deadline
// in the past still gets one immediate attempt.
func (m *FileMutex) TryLockUntil(deadline time.Time) (bool, error) {
	if m.fl == nil {
		return false, ErrNoHandle
	}
	return m.lockUntil(deadline, m.fl.TryLock, m.fl.TryLockContext)
}

// LockContext acquires exclusive ownership, blocking until acquired or ctx is
// done. Cancellation surfaces as the context's error.
func (m *FileMutex) LockContext(ctx context.Context) error {
	if m.fl == nil {
		return ErrNoHandle
	}
	locked, err := m.fl.TryLockContext(ctx, pollInterval)
	if err != nil {
		return fmt.Errorf("acquiring exclusive lock on %s: %w", m.path, err)
	}
	if !locked {
		return fmt.Errorf("acquiring exclusive lock on %s: %w", m.path, ctx.Err())
	}
	return nil
}

// Unlock releases exclusive ownership. The caller must hold the exclusive
// lock; calling Unlock without it returns ErrNotLocked.
func (m *FileMutex) Unlock() error {
	if m.fl == nil {
		return ErrNoHandle
	}
	if !m.fl.Locked() {
		return ErrNotLocked
	}
	if err := m.fl.Unlock(); err != nil {
		return fmt.Errorf("releasing exclusive lock on %s: %w", m.path, err)
	}
	return nil
}

// RLock acquires sharable ownership, blocking only while an exclusive holder
// exists. Any number of sharable holders may coexist.
func (m *FileMutex) RLock() error {
	if m.fl == nil {
		return ErrNoHandle
	}
	if err := m.fl.RLock(); err != nil {
		return fmt.Errorf("acquiring sharable lock on %s: %w", m.path, err)
	}
	return nil
}

// TryRLock attempts sharable ownership without blocking. It returns false
// when an exclusive holder exists, and an error only on OS-level failure.
func (m *FileMutex) TryRLock() (bool, error) {
	if m.fl == nil {
		return false, ErrNoHandle
	}
	locked, err := m.fl.TryRLock()
	if err != nil {
		return false, fmt.Errorf("acquiring sharable lock on %s: %w", m.path, err)
	}
	return locked, nil
}

// TryRLockUntil attempts sharable ownership, retrying until deadline. It
// returns true once acquired, false if the deadline passes first.
func (m *FileMutex) TryRLockUntil(deadline time.Time) (bool, error) {
	if m.fl == nil {
		return false, ErrNoHandle
	}
	return m.lockUntil(deadline, m.fl.TryRLock, m.fl.TryRLockContext)
}

// RLockContext acquires sharable ownership, blocking until acquired or ctx is
// done. Cancellation surfaces as the context's error.
func (m *FileMutex) RLockContext(ctx context.Context) error {
	if m.fl == nil {
		return ErrNoHandle
	}
	locked, err := m.fl.TryRLockContext(ctx, pollInterval)
	if err != nil {
		return fmt.Errorf("acquiring sharable lock on %s: %w", m.path, err)
	}
	if !locked {
		return fmt.Errorf("acquiring sharable lock on %s: %w", m.path, ctx.Err())
	}
	return nil
}

// RUnlock releases one sharable ownership claim. The caller must hold the
// sharable lock; calling RUnlock without it returns ErrNotRLocked.
func (m *FileMutex) RUnlock() error {
	if m.fl == nil {
		return ErrNoHandle
	}
	if !m.fl.RLocked() {
		return ErrNotRLocked
	}
	if err := m.fl.Unlock(); err != nil {
		return fmt.Errorf("releasing sharable lock on %s: %w", m.path, err)
	}
	return nil
}

// Close releases any still-held claim and drops the lock handle, leaving the
// mutex empty. It closes the lock file but never deletes it. Close on an
// empty mutex is a no-op.
func (m *FileMutex) Close() error {
	if m.fl == nil {
		return nil
	}
	fl := m.fl
	m.fl = nil
	if err := fl.Close(); err != nil {
		return fmt.Errorf("closing lock handle for %s: %w", m.path, err)
	}
	return nil
}

// lockUntil runs one immediate attempt via try, then polls via tryCtx under a
// deadline context. Deadline expiry is reported as false, never as an error,
// and never after ownership was acquired.
func (m *FileMutex) lockUntil(deadline time.Time, try func() (bool, error), tryCtx func(context.Context, time.Duration) (bool, error)) (bool, error) {
	locked, err := try()
	if err != nil {
		return false, fmt.Errorf("acquiring lock on %s: %w", m.path, err)
	}
	if locked {
		return true, nil
	}
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	defer cancel()
	locked, err = tryCtx(ctx, pollInterval)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return false, nil
		}
		return false, fmt.Errorf("acquiring lock on %s: %w", m.path, err)
	}
	return locked, nil
}

// Remove deletes the lock file derived from target with the same suffix
// convention New uses. It returns false if the file did not exist and true if
// it was removed; any other I/O failure is an error.
//
// Remove does not check for current holders. A process that already holds the
// lock keeps a valid handle to the now-unlinked file, while later New calls
// create a fresh file that no longer contends with it. Callers are expected
// to remove the lock file only once all parties have released it.
func Remove(target string, opts ...Option) (bool, error) {
	if target == "" {
		return false, ErrTargetRequired
	}
	o := newOptions(opts)
	return fsutil.RemoveFile(target + o.suffix)
}
