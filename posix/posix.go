// Package posix implements unbuffered, descriptor-level file access
// mirroring open(2), read(2), write(2), lseek(2) and ftruncate(2) directly.
//
// Unlike [github.com/desertwitch/fileio/stream], there is no buffering, no
// text orientation and no completion looping: a transfer issues exactly one
// system call and reports the actual byte count, which may legitimately be
// less than requested. Callers needing completion must loop themselves.
//
// A [File] uniquely owns its descriptor and releases it exactly once. No
// operation is safe for concurrent use without external serialization.
package posix

import (
	"io"

	"github.com/desertwitch/fileio/fileerror"
)

// File wraps one OS file descriptor.
type File struct {
	path   string
	fd     int
	closed bool

	unixOps unixProvider
}

// Open opens the file at path with the given open-flag bitmask and
// permission bits (consulted only when the flags request creation), using
// the real system calls. On failure nothing is left to release and an
// open-kind [fileerror.Error] carrying the OS code is returned.
func Open(path string, flags int, perm uint32) (*File, error) {
	return NewHandler().Open(path, flags, perm)
}

// Open opens the file at path through the [Handler]'s system call provider.
func (h *Handler) Open(path string, flags int, perm uint32) (*File, error) {
	fd, err := h.UnixOps.Open(path, flags, perm)
	if err != nil {
		return nil, fileerror.New(fileerror.KindOpen, fileerror.Errno(err), path,
			"error opening file %s", path)
	}

	return &File{
		path:    path,
		fd:      fd,
		unixOps: h.UnixOps,
	}, nil
}

// Path returns the file path the descriptor was opened with.
func (f *File) Path() string {
	return f.path
}

// Fd returns the raw OS file descriptor. It remains owned by the [File];
// callers must not close it.
func (f *File) Fd() int {
	return f.fd
}

// Close releases the descriptor exactly once. Any call after a completed
// release fails with [ErrClosed]; a failing OS-level close is reported as a
// close-kind [fileerror.Error].
func (f *File) Close() error {
	if f.closed {
		return ErrClosed
	}
	f.closed = true

	if err := f.unixOps.Close(f.fd); err != nil {
		return fileerror.New(fileerror.KindClose, fileerror.Errno(err), f.path,
			"error closing file %s", f.path)
	}
	f.fd = -1

	return nil
}

// Read issues exactly one read(2) into p and returns the transferred byte
// count, which may be less than len(p) with no error. A zero-byte transfer
// into a non-empty buffer reports [io.EOF]; an OS failure is reported as a
// read-kind [fileerror.Error].
func (f *File) Read(p []byte) (int, error) {
	if f.closed {
		return 0, ErrClosed
	}

	n, err := f.unixOps.Read(f.fd, p)
	if err != nil {
		return 0, fileerror.New(fileerror.KindRead, fileerror.Errno(err), f.path,
			"error reading from file %s", f.path)
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}

	return n, nil
}

// Write issues exactly one write(2) from p and returns the transferred byte
// count, which may be less than len(p) with no error. An OS failure is
// reported as a write-kind [fileerror.Error].
func (f *File) Write(p []byte) (int, error) {
	if f.closed {
		return 0, ErrClosed
	}

	n, err := f.unixOps.Write(f.fd, p)
	if err != nil {
		return 0, fileerror.New(fileerror.KindWrite, fileerror.Errno(err), f.path,
			"error writing to file %s", f.path)
	}

	return n, nil
}
