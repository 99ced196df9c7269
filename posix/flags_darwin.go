//go:build darwin

package posix

import "golang.org/x/sys/unix"

// BSD-derived open flags only available on darwin.
const (
	SharedLock    = unix.O_SHLOCK
	ExclusiveLock = unix.O_EXLOCK
	Symlink       = unix.O_SYMLINK
	EventsOnly    = unix.O_EVTONLY
)
