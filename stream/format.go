package stream

import (
	"bufio"
	"fmt"
	"io"

	"github.com/desertwitch/fileio/fileerror"
)

// Printf writes formatted output per [fmt.Fprintf] semantics and returns
// the byte count written. Malformed format arguments are the caller's
// responsibility; an underlying OS failure is reported as a write-kind
// [fileerror.Error].
func (f *File) Printf(format string, args ...any) (int, error) {
	return f.printf(OrientationByte, format, args...)
}

// WidePrintf behaves like [File.Printf] but commits the stream to the wide
// orientation.
func (f *File) WidePrintf(format string, args ...any) (int, error) {
	return f.printf(OrientationWide, format, args...)
}

func (f *File) printf(desired Orientation, format string, args ...any) (int, error) {
	if err := f.textWrite(desired); err != nil {
		return 0, err
	}
	if err := f.prepareWrite(); err != nil {
		return 0, err
	}

	var (
		n   int
		err error
	)
	if f.bufMode == BufferNone {
		n, err = fmt.Fprintf(f.f, format, args...)
	} else {
		n, err = fmt.Fprintf(f.writer(), format, args...)
		if err == nil && f.bufMode == BufferLine {
			// Formatted output is not scanned for newlines; line mode
			// flushes after every print.
			err = f.w.Flush()
		}
	}

	if err != nil {
		return n, fileerror.New(fileerror.KindWrite, fileerror.Errno(err), f.path,
			"error printing to file %s", f.path)
	}

	return n, nil
}

// Scanf reads formatted input per [fmt.Fscanf] semantics and returns the
// number of items successfully scanned. Scan-match failures surface as the
// [fmt] errors of the underlying scanner; an OS failure surfaces as a
// read-kind [fileerror.Error].
func (f *File) Scanf(format string, args ...any) (int, error) {
	return f.scanf(OrientationByte, format, args...)
}

// WideScanf behaves like [File.Scanf] but commits the stream to the wide
// orientation.
func (f *File) WideScanf(format string, args ...any) (int, error) {
	return f.scanf(OrientationWide, format, args...)
}

func (f *File) scanf(desired Orientation, format string, args ...any) (int, error) {
	if err := f.textRead(desired); err != nil {
		return 0, err
	}
	if err := f.prepareRead(); err != nil {
		return 0, err
	}

	return fmt.Fscanf(&scanReader{f: f}, format, args...)
}

// scanReader adapts a [File] for [fmt.Fscanf], providing rune-level
// unreads through the stream's pushback so that scanning leaves the stream
// positioned after the consumed input only.
type scanReader struct {
	f        *File
	lastRune rune
	lastSize int
}

func (sr *scanReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	b, err := sr.f.readByte()
	if err != nil {
		return 0, err
	}
	p[0] = b

	return 1, nil
}

func (sr *scanReader) ReadRune() (rune, int, error) {
	r, size, err := sr.f.readRune()
	if err == nil {
		sr.lastRune, sr.lastSize = r, size
	}

	return r, size, err
}

func (sr *scanReader) UnreadRune() error {
	if sr.lastSize == 0 {
		return bufio.ErrInvalidUnreadRune
	}
	sr.f.pushbackRune(sr.lastRune)
	sr.lastRune, sr.lastSize = 0, 0

	return nil
}

var _ io.RuneScanner = (*scanReader)(nil)
