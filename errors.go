package filemutex

import "fmt"

var (
	// ErrTargetRequired is returned when a target path is empty.
	ErrTargetRequired = fmt.Errorf("target path is required")
	// ErrNoHandle is returned when a locking operation is invoked on an
	// empty mutex: the zero value, or one whose handle was closed.
	ErrNoHandle = fmt.Errorf("no lock handle")
	// ErrNotLocked is returned by Unlock when exclusive ownership is not held.
	ErrNotLocked = fmt.Errorf("exclusive lock not held")
	// ErrNotRLocked is returned by RUnlock when sharable ownership is not held.
	ErrNotRLocked = fmt.Errorf("sharable lock not held")
	// ErrLockTimeout is returned when acquiring a lock times out.
	ErrLockTimeout = fmt.Errorf("timeout acquiring lock")
	// ErrNilHandle is returned when a nil handle is provided to Release.
	ErrNilHandle = fmt.Errorf("nil lock handle")
)
