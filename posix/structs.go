package posix

import (
	"golang.org/x/sys/unix"

	"github.com/desertwitch/fileio/internal/syscalls"
)

// unixProvider is an interface for the needed [unix] system calls.
type unixProvider interface {
	Open(path string, flags int, mode uint32) (int, error)
	Close(fd int) error
	Read(fd int, p []byte) (int, error)
	Write(fd int, p []byte) (int, error)
	Seek(fd int, offset int64, whence int) (int64, error)
	Ftruncate(fd int, length int64) error
	Fstat(fd int, stat *unix.Stat_t) error
}

// Handler is the principal implementation for descriptor-level file access.
// Its zero value is not usable; construct it with [NewHandler] or populate
// UnixOps with a provider.
type Handler struct {
	UnixOps unixProvider
}

// NewHandler returns a pointer to a new [Handler] backed by the real system
// calls.
func NewHandler() *Handler {
	return &Handler{
		UnixOps: syscalls.RealUnix{},
	}
}
