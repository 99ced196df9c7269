// Package fileerror provides the shared failure taxonomy for the file
// abstractions of this module. Every OS-linked failure is reported as one
// concrete [Error] shape carrying a [Kind], the affected path, the numeric
// OS error code and a formatted diagnostic message.
package fileerror

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Kind identifies the failed operation class of an [Error].
type Kind uint8

const (
	// KindOpen is a failure of the OS-level open call.
	KindOpen Kind = iota + 1

	// KindClose is a failure releasing the OS resource.
	KindClose

	// KindStatus is a failure of the OS-level status (fstat) call.
	KindStatus

	// KindFlush is a failure flushing buffered data to the OS.
	KindFlush

	// KindRead is a failure of an OS-level read transfer.
	KindRead

	// KindWrite is a failure of an OS-level write transfer.
	KindWrite

	// KindSeek is a failure repositioning the OS resource.
	KindSeek

	// KindTell is a failure querying the current position.
	KindTell

	// KindTruncate is a failure changing the file length.
	KindTruncate

	// KindMemoryMap is reserved for memory-mapping failures; no operation
	// of this module produces it.
	KindMemoryMap
)

// String returns a short lowercase name for the [Kind].
func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindClose:
		return "close"
	case KindStatus:
		return "status"
	case KindFlush:
		return "flush"
	case KindRead:
		return "read"
	case KindWrite:
		return "write"
	case KindSeek:
		return "seek"
	case KindTell:
		return "tell"
	case KindTruncate:
		return "truncation"
	case KindMemoryMap:
		return "memory-mapping"
	default:
		return "unknown"
	}
}

var (
	// ErrEmptyFile is an error that occurs when an operation requires a
	// non-empty file but the file contains no data.
	ErrEmptyFile = errors.New("file is empty")

	// ErrUnexpectedEOF is an error that occurs when the end of file is
	// reached in the middle of a fixed-size element, leaving a partial
	// element that cannot be counted.
	ErrUnexpectedEOF = errors.New("unexpected end of file")
)

// Error is the one concrete shape for all OS-linked failures. The original
// underlying [unix.Errno] (if any) can be accessed via errors.Unwrap, so
// errors.Is(err, unix.ENOENT) and friends work as expected.
type Error struct {
	Kind    Kind
	Path    string
	Errno   unix.Errno
	Message string
}

// Error returns the formatted diagnostic message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying OS error code, or nil when the failure did
// not originate from an OS call.
func (e *Error) Unwrap() error {
	if e.Errno == 0 {
		return nil
	}

	return e.Errno
}

// New returns a pointer to a new [Error]. The decoded OS error string and
// numeric code are appended to the formatted message when an errno is
// present, matching the diagnostic shape of all errors in this module.
func New(kind Kind, errno unix.Errno, path string, format string, args ...any) *Error {
	message := fmt.Sprintf(format, args...)
	if errno != 0 {
		message = fmt.Sprintf("%s: %v (%d)", message, errno, int(errno))
	}

	return &Error{
		Kind:    kind,
		Path:    path,
		Errno:   errno,
		Message: message,
	}
}

// Errno extracts the [unix.Errno] from an arbitrary error chain, returning
// zero when none is present. Errors produced by [os] and
// [golang.org/x/sys/unix] both carry one.
func Errno(err error) unix.Errno {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return errno
	}

	return 0
}

// KindOf returns the [Kind] of the first [Error] in the chain, or zero when
// the error does not belong to the taxonomy.
func KindOf(err error) Kind {
	var fileErr *Error
	if errors.As(err, &fileErr) {
		return fileErr.Kind
	}

	return 0
}
