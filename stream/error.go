package stream

import "errors"

var (
	// ErrClosed is an error that occurs when an operation is attempted on
	// a [File] whose stream was already released.
	ErrClosed = errors.New("file is already closed")

	// ErrNotTextFile is an error that occurs when a character, string,
	// line or formatted operation is attempted on a [Binary] file.
	ErrNotTextFile = errors.New("operation requires a text file")

	// ErrNotBinaryFile is an error that occurs when a byte or element
	// transfer is attempted on a [Text] file.
	ErrNotBinaryFile = errors.New("operation requires a binary file")

	// ErrNotReadable is an error that occurs when a read operation is
	// attempted on a file whose access mode does not permit reading.
	ErrNotReadable = errors.New("file is not open for reading")

	// ErrNotWritable is an error that occurs when a write operation is
	// attempted on a file whose access mode does not permit writing.
	ErrNotWritable = errors.New("file is not open for writing")

	// ErrOrientation is an error that occurs when an operation of one
	// character family is attempted on a stream already committed to the
	// other orientation.
	ErrOrientation = errors.New("stream is committed to the other character orientation")

	// ErrBufferTooSmall is an error that occurs when the supplied buffer
	// cannot hold the requested element transfer.
	ErrBufferTooSmall = errors.New("buffer is too small for requested transfer")

	// ErrInvalidElementSize is an error that occurs when an element
	// transfer is requested with a non-positive element size or count.
	ErrInvalidElementSize = errors.New("element size and count must be positive")
)
