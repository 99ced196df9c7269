package posix

import "errors"

var (
	// ErrClosed is an error that occurs when an operation is attempted on
	// a [File] whose descriptor was already released.
	ErrClosed = errors.New("file is already closed")
)
