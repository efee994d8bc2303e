package filemutex

import (
	"context"
	"time"

	"github.com/gofrs/flock"
)

// osLock is the advisory-locking capability FileMutex requires from the
// platform: exclusive and sharable acquisition in blocking, non-blocking and
// context-polled forms, plus release and handle teardown. The true
// synchronization semantics (contention resolution, cross-process visibility)
// live behind this interface; FileMutex adds only path derivation, lock-file
// setup and precondition checks.
//
// github.com/gofrs/flock implements it on top of flock(2) on Unix and
// LockFileEx on Windows. Tests substitute a fake to exercise OS-failure paths.
type osLock interface {
	Lock() error
	TryLock() (bool, error)
	TryLockContext(ctx context.Context, retryDelay time.Duration) (bool, error)
	RLock() error
	TryRLock() (bool, error)
	TryRLockContext(ctx context.Context, retryDelay time.Duration) (bool, error)
	Unlock() error
	Close() error
	Locked() bool
	RLocked() bool
}

var _ osLock = (*flock.Flock)(nil)
