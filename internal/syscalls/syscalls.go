// Package syscalls wraps the OS calls used by this module behind small
// value types, so that consuming packages can depend on narrow provider
// interfaces and tests can inject fakes.
package syscalls

import (
	"os"

	"golang.org/x/sys/unix"
)

// RealOS provides the real [os] standard library calls.
type RealOS struct{}

func (RealOS) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// RealUnix provides the real [unix] system calls.
type RealUnix struct{}

func (RealUnix) Open(path string, flags int, mode uint32) (int, error) {
	return unix.Open(path, flags, mode)
}

func (RealUnix) Close(fd int) error {
	return unix.Close(fd)
}

func (RealUnix) Read(fd int, p []byte) (int, error) {
	return unix.Read(fd, p)
}

func (RealUnix) Write(fd int, p []byte) (int, error) {
	return unix.Write(fd, p)
}

func (RealUnix) Seek(fd int, offset int64, whence int) (int64, error) {
	return unix.Seek(fd, offset, whence)
}

func (RealUnix) Ftruncate(fd int, length int64) error {
	return unix.Ftruncate(fd, length)
}

func (RealUnix) Fstat(fd int, stat *unix.Stat_t) error {
	return unix.Fstat(fd, stat)
}
