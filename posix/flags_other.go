//go:build !darwin

package posix

// BSD-derived open flags without an equivalent on this platform; they are
// zero so that cross-platform callers still compile, and composing them
// into an open-flag mask is a no-op.
const (
	SharedLock    = 0
	ExclusiveLock = 0
	Symlink       = 0
	EventsOnly    = 0
)
