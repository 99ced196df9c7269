package stream

import (
	"io"

	"github.com/desertwitch/fileio/fileerror"
)

// binaryRead gates a reading binary operation.
func (f *File) binaryRead() error {
	if f.closed {
		return ErrClosed
	}
	if f.ftype != Binary {
		return ErrNotBinaryFile
	}
	if !f.mode.canRead() {
		return ErrNotReadable
	}

	return nil
}

// binaryWrite gates a writing binary operation.
func (f *File) binaryWrite() error {
	if f.closed {
		return ErrClosed
	}
	if f.ftype != Binary {
		return ErrNotBinaryFile
	}
	if !f.mode.canWrite() {
		return ErrNotWritable
	}

	return nil
}

// Read reads up to len(p) bytes, retrying short transfers until either p is
// full or the end of file is reached. A partial transfer ended by the end
// of file is returned with no error; a zero-byte transfer into a non-empty
// buffer reports [io.EOF]; a genuine OS failure is reported as a read-kind
// [fileerror.Error] carrying the transferred-vs-requested context.
func (f *File) Read(p []byte) (int, error) {
	if err := f.binaryRead(); err != nil {
		return 0, err
	}

	n, err := f.readFull(p)
	if err != nil && err != io.EOF {
		return n, fileerror.New(fileerror.KindRead, fileerror.Errno(err), f.path,
			"error reading from file %s: read %d bytes but expected to read %d bytes",
			f.path, n, len(p))
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}

	return n, nil
}

// Write writes len(p) bytes, retrying short transfers until either p is
// fully written or a genuine OS failure occurs; the failure is reported as
// a write-kind [fileerror.Error] carrying the transferred-vs-requested
// context.
func (f *File) Write(p []byte) (int, error) {
	if err := f.binaryWrite(); err != nil {
		return 0, err
	}

	n, err := f.writeFull(p)
	if err != nil {
		return n, fileerror.New(fileerror.KindWrite, fileerror.Errno(err), f.path,
			"error writing to file %s: wrote %d bytes but expected to write %d bytes",
			f.path, n, len(p))
	}

	return n, nil
}

// ReadElements reads up to count elements of elementSize bytes each into p,
// retrying short transfers until either the requested count is satisfied
// or the end of file is reached. A partial element count ended by the end
// of file is returned with no error, except that an end of file splitting
// an element additionally reports [fileerror.ErrUnexpectedEOF]; a
// zero-element transfer reports [io.EOF]; a genuine OS failure is reported
// as a read-kind [fileerror.Error] carrying the element context.
func (f *File) ReadElements(p []byte, elementSize, count int) (int, error) {
	if err := f.binaryRead(); err != nil {
		return 0, err
	}
	if elementSize <= 0 || count <= 0 {
		return 0, ErrInvalidElementSize
	}
	need := elementSize * count
	if len(p) < need {
		return 0, ErrBufferTooSmall
	}

	n, err := f.readFull(p[:need])
	elements := n / elementSize

	if err != nil && err != io.EOF {
		return elements, fileerror.New(fileerror.KindRead, fileerror.Errno(err), f.path,
			"error reading from file %s: read %d elements but expected to read %d elements (of size %d)",
			f.path, elements, count, elementSize)
	}
	if n == 0 {
		return 0, io.EOF
	}
	if n%elementSize != 0 {
		return elements, fileerror.ErrUnexpectedEOF
	}

	return elements, nil
}

// WriteElements writes count elements of elementSize bytes each from p,
// retrying short transfers until either the requested count is fully
// written or a genuine OS failure occurs; the failure is reported as a
// write-kind [fileerror.Error] carrying the element context.
func (f *File) WriteElements(p []byte, elementSize, count int) (int, error) {
	if err := f.binaryWrite(); err != nil {
		return 0, err
	}
	if elementSize <= 0 || count <= 0 {
		return 0, ErrInvalidElementSize
	}
	need := elementSize * count
	if len(p) < need {
		return 0, ErrBufferTooSmall
	}

	n, err := f.writeFull(p[:need])
	if err != nil {
		return n / elementSize, fileerror.New(fileerror.KindWrite, fileerror.Errno(err), f.path,
			"error writing to file %s: wrote %d elements but expected to write %d elements (of size %d)",
			f.path, n/elementSize, count, elementSize)
	}

	return count, nil
}

// readFull is the bounded-transfer completion loop: it accumulates reads
// into p until p is full or a short transfer occurs. A short transfer with
// an OS error returns that error; a short transfer at the end of file
// returns [io.EOF] alongside the accumulated count.
func (f *File) readFull(p []byte) (int, error) {
	if err := f.prepareRead(); err != nil {
		return 0, err
	}

	total := 0
	for total < len(p) && len(f.pushback) > 0 {
		last := len(f.pushback) - 1
		p[total] = f.pushback[last]
		f.pushback = f.pushback[:last]
		total++
	}

	for total < len(p) {
		var (
			n   int
			err error
		)
		if f.bufMode == BufferNone {
			n, err = f.f.Read(p[total:])
		} else {
			n, err = f.reader().Read(p[total:])
		}
		total += n

		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, io.EOF
		}
	}

	return total, nil
}

// writeFull is the bounded-transfer completion loop for writes: it repeats
// the underlying transfer until p is fully written or an OS error occurs.
func (f *File) writeFull(p []byte) (int, error) {
	if err := f.prepareWrite(); err != nil {
		return 0, err
	}

	total := 0
	for total < len(p) {
		var (
			n   int
			err error
		)
		if f.bufMode == BufferNone {
			n, err = f.f.Write(p[total:])
		} else {
			n, err = f.writer().Write(p[total:])
		}
		total += n

		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, io.ErrShortWrite
		}
	}

	if f.bufMode == BufferLine && f.w != nil && containsNewline(p) {
		if err := f.w.Flush(); err != nil {
			return total, err
		}
	}

	return total, nil
}

var (
	_ io.Reader = (*File)(nil)
	_ io.Writer = (*File)(nil)
)
