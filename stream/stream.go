// Package stream implements buffered, optionally text-oriented file access
// with automatic short-transfer recovery.
//
// A [File] combines a [FileType] (text or binary) and an [AccessMode],
// both fixed at construction, with a mutable buffering strategy. Text files
// carry a sticky character [Orientation]: the stream starts uncommitted and
// the first byte-family or rune-family operation (or an explicit
// [File.SetCharacterMode] request) commits it for the lifetime of the
// stream.
//
// A [File] uniquely owns its OS resource and releases it exactly once. No
// operation is safe for concurrent use without external serialization; the
// advisory [File.Lock], [File.TryLock] and [File.Unlock] primitives enable
// cooperative exclusion among threads sharing one stream.
package stream

import (
	"bufio"
	"io"
	"os"
	"sync"

	"github.com/desertwitch/fileio/fileerror"
)

const (
	// defaultBufferSize is the buffering granularity before [File.SetBuffer]
	// is called.
	defaultBufferSize = 4 * 1024

	// defaultCreatePerm is the permission mask for files created by [Open].
	defaultCreatePerm = os.FileMode(0o644)

	// byteStringBufferLength bounds the local accumulator of the byte
	// string and line readers.
	byteStringBufferLength = 4 * 1024

	// wideStringBufferLength bounds the local accumulator of the wide
	// string and line readers.
	wideStringBufferLength = 1024
)

// File wraps one buffered file stream.
type File struct {
	mu sync.Mutex

	path  string
	ftype FileType
	mode  AccessMode

	f      *os.File
	closed bool

	orientation Orientation

	bufMode BufferMode
	bufSize int
	r       *bufio.Reader
	w       *bufio.Writer

	// pushback holds characters returned by the unread operations; it is
	// consumed LIFO before the underlying stream.
	pushback []byte

	unixOps unixProvider
}

// Open opens the file at path with the given type and access mode, using
// the real system calls. Files created by writing modes receive 0644
// permissions. On failure nothing is left to release and an open-kind
// [fileerror.Error] carrying the OS code is returned.
func Open(path string, ftype FileType, mode AccessMode) (*File, error) {
	return NewHandler().Open(path, ftype, mode)
}

// Open opens the file at path through the [Handler]'s system call
// providers.
func (h *Handler) Open(path string, ftype FileType, mode AccessMode) (*File, error) {
	osFile, err := h.OSOps.OpenFile(path, mode.openFlags(), defaultCreatePerm)
	if err != nil {
		return nil, fileerror.New(fileerror.KindOpen, fileerror.Errno(err), path,
			"error opening %s file %s for %s", ftype, path, mode)
	}

	return &File{
		path:    path,
		ftype:   ftype,
		mode:    mode,
		f:       osFile,
		bufMode: BufferFull,
		bufSize: defaultBufferSize,
		unixOps: h.UnixOps,
	}, nil
}

// Close flushes any buffered writes and releases the stream exactly once.
// Any call after a completed release fails with [ErrClosed]. When both the
// flush and the OS-level close fail, the flush failure wins (first failure
// policy); either is reported as a close-kind [fileerror.Error].
func (f *File) Close() error {
	if f.closed {
		return ErrClosed
	}
	f.closed = true

	var flushErr error
	if f.w != nil && f.w.Buffered() > 0 {
		if err := f.w.Flush(); err != nil {
			flushErr = fileerror.New(fileerror.KindClose, fileerror.Errno(err), f.path,
				"error flushing file %s during close", f.path)
		}
	}

	if err := f.f.Close(); err != nil && flushErr == nil {
		return fileerror.New(fileerror.KindClose, fileerror.Errno(err), f.path,
			"error closing file %s", f.path)
	}

	return flushErr
}

// Path returns the file path the stream was opened with.
func (f *File) Path() string {
	return f.path
}

// Type returns the [FileType] fixed at construction.
func (f *File) Type() FileType {
	return f.ftype
}

// Mode returns the [AccessMode] fixed at construction.
func (f *File) Mode() AccessMode {
	return f.mode
}

// IsText reports whether the file was opened as [Text].
func (f *File) IsText() bool {
	return f.ftype == Text
}

// IsBinary reports whether the file was opened as [Binary].
func (f *File) IsBinary() bool {
	return f.ftype == Binary
}

// IsReadOnly reports whether the access mode permits reading only.
func (f *File) IsReadOnly() bool {
	return f.mode == Read
}

// IsWriteOnly reports whether the access mode permits writing only.
func (f *File) IsWriteOnly() bool {
	return f.mode == Write || f.mode == Append
}

// IsReadWrite reports whether the access mode permits both reading and
// writing.
func (f *File) IsReadWrite() bool {
	return f.mode == ReadExtended || f.mode == WriteExtended || f.mode == AppendExtended
}

// Fd returns the raw OS file descriptor underneath the stream. It remains
// owned by the [File]; callers must not close it.
func (f *File) Fd() int {
	return int(f.f.Fd())
}

// Lock acquires the advisory per-stream lock, blocking until it is
// available. The lock is purely cooperative: no file operation checks it.
func (f *File) Lock() {
	f.mu.Lock()
}

// TryLock attempts to acquire the advisory per-stream lock without
// blocking and reports whether it succeeded.
func (f *File) TryLock() bool {
	return f.mu.TryLock()
}

// Unlock releases the advisory per-stream lock.
func (f *File) Unlock() {
	f.mu.Unlock()
}

// reader returns the buffered reader, creating it at the configured
// granularity on first use.
func (f *File) reader() *bufio.Reader {
	if f.r == nil {
		f.r = bufio.NewReaderSize(f.f, f.bufSize)
	}

	return f.r
}

// writer returns the buffered writer, creating it at the configured
// granularity on first use.
func (f *File) writer() *bufio.Writer {
	if f.w == nil {
		f.w = bufio.NewWriterSize(f.f, f.bufSize)
	}

	return f.w
}

// prepareRead flushes pending buffered writes so that reads observe them.
func (f *File) prepareRead() error {
	if f.closed {
		return ErrClosed
	}

	if f.w != nil && f.w.Buffered() > 0 {
		if err := f.w.Flush(); err != nil {
			return fileerror.New(fileerror.KindFlush, fileerror.Errno(err), f.path,
				"error flushing file %s", f.path)
		}
	}

	return nil
}

// prepareWrite reconciles buffered read state so that writes land at the
// logical position.
func (f *File) prepareWrite() error {
	if f.closed {
		return ErrClosed
	}

	return f.syncReadState()
}

// syncReadState seeks the OS position back to the logical position and
// drops any buffered read state and pushback.
func (f *File) syncReadState() error {
	if (f.r == nil || f.r.Buffered() == 0) && len(f.pushback) == 0 {
		return nil
	}

	position, err := f.Position()
	if err != nil {
		return err
	}

	if _, err := f.f.Seek(position, io.SeekStart); err != nil {
		return fileerror.New(fileerror.KindSeek, fileerror.Errno(err), f.path,
			"error seeking to position %d of file %s", position, f.path)
	}
	f.discardReadState()

	return nil
}

// discardReadState drops any buffered read state and pushback; the OS
// position becomes authoritative.
func (f *File) discardReadState() {
	if f.r != nil {
		f.r.Reset(f.f)
	}
	f.pushback = f.pushback[:0]
}

// readByte reads one byte, honoring pushback and the configured buffering.
// End of file is reported as [io.EOF]; genuine OS failures as read-kind
// errors.
func (f *File) readByte() (byte, error) {
	if err := f.prepareRead(); err != nil {
		return 0, err
	}

	if n := len(f.pushback); n > 0 {
		b := f.pushback[n-1]
		f.pushback = f.pushback[:n-1]

		return b, nil
	}

	var (
		b   byte
		err error
	)
	if f.bufMode == BufferNone {
		var buf [1]byte
		var n int
		n, err = f.f.Read(buf[:])
		if n == 1 {
			b, err = buf[0], nil
		} else if err == nil {
			err = io.EOF
		}
	} else {
		b, err = f.reader().ReadByte()
	}

	if err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}

		return 0, fileerror.New(fileerror.KindRead, fileerror.Errno(err), f.path,
			"error getting character from file %s", f.path)
	}

	return b, nil
}

// writeBytes writes p at the logical position, honoring the configured
// buffering; in line mode a flush follows any written newline. OS failures
// are reported as write-kind errors.
func (f *File) writeBytes(p []byte) (int, error) {
	if err := f.prepareWrite(); err != nil {
		return 0, err
	}

	var (
		n   int
		err error
	)
	if f.bufMode == BufferNone {
		n, err = f.f.Write(p)
	} else {
		n, err = f.writer().Write(p)
		if err == nil && f.bufMode == BufferLine && containsNewline(p) {
			err = f.w.Flush()
		}
	}

	if err != nil {
		return n, fileerror.New(fileerror.KindWrite, fileerror.Errno(err), f.path,
			"error writing to file %s", f.path)
	}

	return n, nil
}

func containsNewline(p []byte) bool {
	for _, b := range p {
		if b == '\n' {
			return true
		}
	}

	return false
}
