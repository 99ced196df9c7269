package stream

import (
	"github.com/desertwitch/fileio/fileerror"
)

// SetBuffer configures the buffering strategy and granularity of the
// stream. Pending buffered writes are flushed and buffered read state is
// reconciled before the switch; a non-positive size selects the default
// granularity. Unlike setvbuf, the buffer itself is always owned by the
// stream, so a caller-supplied buffer collapses to its size.
func (f *File) SetBuffer(mode BufferMode, size int) error {
	if err := f.prepareRead(); err != nil {
		return err
	}
	if err := f.syncReadState(); err != nil {
		return err
	}

	if size <= 0 {
		size = defaultBufferSize
	}

	f.bufMode = mode
	f.bufSize = size
	f.r = nil
	f.w = nil

	return nil
}

// SetOptimalBuffer requests full buffering at the granularity the OS
// reports as the file's preferred block size, with
// [RecommendedBlockSize] as both floor and fallback when the size is
// unavailable.
func (f *File) SetOptimalBuffer() error {
	size := int64(RecommendedBlockSize)
	if blockSize, err := f.BlockSize(); err == nil && blockSize > size {
		size = blockSize
	}

	return f.SetBuffer(BufferFull, int(size))
}

// Flush writes any buffered data through to the OS.
func (f *File) Flush() error {
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
