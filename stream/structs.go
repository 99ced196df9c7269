package stream

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/desertwitch/fileio/internal/syscalls"
)

// osProvider is an interface for the needed [os] standard library calls.
type osProvider interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// unixProvider is an interface for the needed [unix] system calls.
type unixProvider interface {
	Fstat(fd int, stat *unix.Stat_t) error
}

// Handler is the principal implementation for buffered file access. Its
// zero value is not usable; construct it with [NewHandler] or populate the
// provider fields.
type Handler struct {
	OSOps   osProvider
	UnixOps unixProvider
}

// NewHandler returns a pointer to a new [Handler] backed by the real system
// calls.
func NewHandler() *Handler {
	return &Handler{
		OSOps:   syscalls.RealOS{},
		UnixOps: syscalls.RealUnix{},
	}
}
