package stream

import (
	"io"

	"golang.org/x/sys/unix"

	"github.com/desertwitch/fileio/fileerror"
)

// Position returns the current logical file position relative to the start
// of the file, accounting for buffered reads, writes and pushback.
func (f *File) Position() (int64, error) {
	if f.closed {
		return 0, ErrClosed
	}

	physical, err := f.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fileerror.New(fileerror.KindTell, fileerror.Errno(err), f.path,
			"error getting position of file %s", f.path)
	}

	position := physical
	if f.r != nil {
		position -= int64(f.r.Buffered())
	}
	position -= int64(len(f.pushback))
	if f.w != nil {
		position += int64(f.w.Buffered())
	}

	return position, nil
}

// Seek repositions the stream; whence is one of [io.SeekStart],
// [io.SeekCurrent] or [io.SeekEnd]. Buffered writes are flushed and any
// buffered read state is dropped. It returns the new position relative to
// the start of the file.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if err := f.prepareRead(); err != nil {
		return 0, err
	}

	if whence == io.SeekCurrent {
		position, err := f.Position()
		if err != nil {
			return 0, err
		}
		offset += position
		whence = io.SeekStart
	}

	position, err := f.f.Seek(offset, whence)
	if err != nil {
		return 0, fileerror.New(fileerror.KindSeek, fileerror.Errno(err), f.path,
			"error seeking to offset %d (whence %d) of file %s", offset, whence, f.path)
	}
	f.discardReadState()

	return position, nil
}

// Rewind repositions the stream to the start of the file, additionally
// dropping any buffered read state and pushback (the latched end-of-file
// analogue of a C stream).
func (f *File) Rewind() error {
	_, err := f.Seek(0, io.SeekStart)

	return err
}

// Length returns the current file length per fstat(2). Writes still held
// in the stream buffer are not reflected until flushed.
func (f *File) Length() (int64, error) {
	stat, err := f.stat()
	if err != nil {
		return 0, err
	}

	return stat.Size, nil
}

// BlockSize returns the OS-reported preferred I/O block size of the file.
func (f *File) BlockSize() (int64, error) {
	stat, err := f.stat()
	if err != nil {
		return 0, err
	}

	return int64(stat.Blksize), nil
}

// Truncate sets the file length per ftruncate(2) after flushing buffered
// writes; the length can both shrink and grow, growing pads with zero
// bytes. The logical position is preserved.
func (f *File) Truncate(length int64) error {
	if err := f.prepareRead(); err != nil {
		return err
	}
	if err := f.syncReadState(); err != nil {
		return err
	}

	if err := f.f.Truncate(length); err != nil {
		return fileerror.New(fileerror.KindTruncate, fileerror.Errno(err), f.path,
			"error setting length of file %s to %d", f.path, length)
	}

	return nil
}

// EndOfFile reports whether the current logical position has reached the
// file length. It is recomputed per call from position and length, not an
// OS end-of-file flag.
func (f *File) EndOfFile() (bool, error) {
	remaining, err := f.BytesRemaining()
	if err != nil {
		return false, err
	}

	return remaining == 0, nil
}

// BytesRemaining returns the byte count between the current logical
// position and the file length, or zero when positioned at or beyond the
// length.
func (f *File) BytesRemaining() (int64, error) {
	position, err := f.Position()
	if err != nil {
		return 0, err
	}

	length, err := f.Length()
	if err != nil {
		return 0, err
	}

	if position >= length {
		return 0, nil
	}

	return length - position, nil
}

func (f *File) stat() (*unix.Stat_t, error) {
	if f.closed {
		return nil, ErrClosed
	}

	var stat unix.Stat_t
	if err := f.unixOps.Fstat(int(f.f.Fd()), &stat); err != nil {
		return nil, fileerror.New(fileerror.KindStatus, fileerror.Errno(err), f.path,
			"error getting status of file %s", f.path)
	}

	return &stat, nil
}
