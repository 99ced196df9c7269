package stream

import "os"

// FileType selects between text-oriented and binary file access; it is
// fixed at construction and gates which operation family is legal.
type FileType uint8

const (
	// Text enables the character, string, line and formatted operations.
	Text FileType = iota

	// Binary enables the raw byte and element transfer operations.
	Binary
)

// String returns the file type name as used in diagnostic messages.
func (t FileType) String() string {
	switch t {
	case Text:
		return "text"
	case Binary:
		return "binary"
	default:
		return "unknown"
	}
}

// AccessMode selects the legal operation subset of a [File]; it is fixed at
// construction.
type AccessMode uint8

const (
	// Read opens an existing file for reading only.
	Read AccessMode = iota

	// Write creates or truncates a file for writing only.
	Write

	// Append creates or opens a file for writing at the end only.
	Append

	// ReadExtended opens an existing file for reading and writing.
	ReadExtended

	// WriteExtended creates or truncates a file for reading and writing.
	WriteExtended

	// AppendExtended creates or opens a file for reading and writing at
	// the end.
	AppendExtended
)

// String returns the access mode description as used in diagnostic
// messages.
func (m AccessMode) String() string {
	switch m {
	case Read:
		return "reading"
	case Write:
		return "writing"
	case Append:
		return "appending"
	case ReadExtended:
		return "extended reading"
	case WriteExtended:
		return "extended writing"
	case AppendExtended:
		return "extended appending"
	default:
		return "unknown"
	}
}

// ModeString returns the stdio-style mode string for the (mode, type)
// combination, e.g. "r" for (Read, Text) and "rb+" for (ReadExtended,
// Binary).
func (m AccessMode) ModeString(t FileType) string {
	var base string
	switch m {
	case Read:
		base = "r"
	case Write:
		base = "w"
	case Append:
		base = "a"
	case ReadExtended:
		base = "r+"
	case WriteExtended:
		base = "w+"
	case AppendExtended:
		base = "a+"
	default:
		return ""
	}

	if t == Binary {
		// The binary marker goes before the extended marker: "rb+".
		return base[:1] + "b" + base[1:]
	}

	return base
}

// openFlags maps the access mode onto the equivalent open-flag bitmask.
func (m AccessMode) openFlags() int {
	switch m {
	case Read:
		return os.O_RDONLY
	case Write:
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case Append:
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case ReadExtended:
		return os.O_RDWR
	case WriteExtended:
		return os.O_RDWR | os.O_CREATE | os.O_TRUNC
	case AppendExtended:
		return os.O_RDWR | os.O_CREATE | os.O_APPEND
	default:
		return os.O_RDONLY
	}
}

// canRead reports whether the access mode permits read operations.
func (m AccessMode) canRead() bool {
	return m == Read || m == ReadExtended || m == WriteExtended || m == AppendExtended
}

// canWrite reports whether the access mode permits write operations.
func (m AccessMode) canWrite() bool {
	return m != Read
}

// BufferMode controls the internal buffering strategy of a [File]; it can
// be changed after construction with [File.SetBuffer].
type BufferMode uint8

const (
	// BufferNone performs every transfer directly against the OS.
	BufferNone BufferMode = iota

	// BufferLine buffers writes and flushes whenever a newline is written.
	BufferLine

	// BufferFull buffers reads and writes at the configured granularity.
	BufferFull
)

// String returns a short name for the buffer mode.
func (b BufferMode) String() string {
	switch b {
	case BufferNone:
		return "none"
	case BufferLine:
		return "line"
	case BufferFull:
		return "full"
	default:
		return "unknown"
	}
}

// Orientation is the character orientation of a text stream. It starts as
// [OrientationUnset] and commits to [OrientationByte] or [OrientationWide]
// on the first explicit request or text operation; a committed orientation
// never changes.
type Orientation uint8

const (
	// OrientationUnset means no text operation has committed the stream
	// yet.
	OrientationUnset Orientation = iota

	// OrientationByte commits the stream to single-byte characters.
	OrientationByte

	// OrientationWide commits the stream to rune (UTF-8) characters.
	OrientationWide
)

// String returns a short name for the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationUnset:
		return "unset"
	case OrientationByte:
		return "byte"
	case OrientationWide:
		return "wide"
	default:
		return "unknown"
	}
}
