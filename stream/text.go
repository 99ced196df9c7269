package stream

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/desertwitch/fileio/fileerror"
)

// SetCharacterMode requests the given character orientation and returns the
// resulting actual orientation of the stream. Requesting
// [OrientationUnset] never commits anything and reports the current state;
// the first [OrientationByte] or [OrientationWide] request commits the
// stream; a conflicting request after commitment is a no-op reporting the
// already-committed orientation.
func (f *File) SetCharacterMode(desired Orientation) Orientation {
	if desired == OrientationUnset {
		return f.orientation
	}

	if f.orientation == OrientationUnset {
		f.orientation = desired
	}

	return f.orientation
}

// GetCharacterMode returns the current character orientation without
// changing it.
func (f *File) GetCharacterMode() Orientation {
	return f.SetCharacterMode(OrientationUnset)
}

// commitOrientation commits the stream to the given orientation, or fails
// with [ErrOrientation] when it is already committed to the other one.
func (f *File) commitOrientation(desired Orientation) error {
	if f.orientation == OrientationUnset {
		f.orientation = desired

		return nil
	}
	if f.orientation != desired {
		return ErrOrientation
	}

	return nil
}

// textRead gates a reading text operation of the given family.
func (f *File) textRead(desired Orientation) error {
	if f.closed {
		return ErrClosed
	}
	if f.ftype != Text {
		return ErrNotTextFile
	}
	if !f.mode.canRead() {
		return ErrNotReadable
	}

	return f.commitOrientation(desired)
}

// textWrite gates a writing text operation of the given family.
func (f *File) textWrite(desired Orientation) error {
	if f.closed {
		return ErrClosed
	}
	if f.ftype != Text {
		return ErrNotTextFile
	}
	if !f.mode.canWrite() {
		return ErrNotWritable
	}

	return f.commitOrientation(desired)
}

// ReadChar reads one byte character. End of file is reported as [io.EOF],
// never as a taxonomy error.
func (f *File) ReadChar() (byte, error) {
	if err := f.textRead(OrientationByte); err != nil {
		return 0, err
	}

	return f.readByte()
}

// UnreadChar pushes a byte character back onto the stream; it is the next
// character read. The pushback survives until the next read, seek or
// buffer change.
func (f *File) UnreadChar(c byte) error {
	if err := f.textRead(OrientationByte); err != nil {
		return err
	}
	f.pushback = append(f.pushback, c)

	return nil
}

// WriteChar writes one byte character.
func (f *File) WriteChar(c byte) error {
	if err := f.textWrite(OrientationByte); err != nil {
		return err
	}
	_, err := f.writeBytes([]byte{c})

	return err
}

// ReadRune reads one rune (UTF-8) character and its encoded size. End of
// file is reported as [io.EOF]; an end of file splitting a rune is
// reported as [fileerror.ErrUnexpectedEOF]. An invalid encoding yields
// [utf8.RuneError] of size one, consuming a single byte.
func (f *File) ReadRune() (rune, int, error) {
	if err := f.textRead(OrientationWide); err != nil {
		return 0, 0, err
	}

	return f.readRune()
}

// UnreadRune pushes a rune back onto the stream in its encoded form; it is
// the next rune read.
func (f *File) UnreadRune(r rune) error {
	if err := f.textRead(OrientationWide); err != nil {
		return err
	}
	f.pushbackRune(r)

	return nil
}

// WriteRune writes one rune in its UTF-8 encoding and returns the encoded
// size.
func (f *File) WriteRune(r rune) (int, error) {
	if err := f.textWrite(OrientationWide); err != nil {
		return 0, err
	}

	buf := utf8.AppendRune(nil, r)
	if _, err := f.writeBytes(buf); err != nil {
		return 0, err
	}

	return len(buf), nil
}

// readRune decodes one UTF-8 rune from the stream, honoring pushback.
func (f *File) readRune() (rune, int, error) {
	b0, err := f.readByte()
	if err != nil {
		return 0, 0, err
	}
	if b0 < utf8.RuneSelf {
		return rune(b0), 1, nil
	}

	length := encodedRuneLength(b0)
	if length == 0 {
		// Invalid leading byte; consume it alone.
		return utf8.RuneError, 1, nil
	}

	buf := make([]byte, 1, utf8.UTFMax)
	buf[0] = b0
	for len(buf) < length {
		b, err := f.readByte()
		if err == io.EOF {
			return 0, 0, fileerror.ErrUnexpectedEOF
		}
		if err != nil {
			return 0, 0, err
		}
		buf = append(buf, b)
	}

	r, size := utf8.DecodeRune(buf)

	return r, size, nil
}

// pushbackRune pushes the encoded form of r so that the bytes pop back out
// in encoding order.
func (f *File) pushbackRune(r rune) {
	buf := utf8.AppendRune(nil, r)
	for i := len(buf) - 1; i >= 0; i-- {
		f.pushback = append(f.pushback, buf[i])
	}
}

// encodedRuneLength returns the UTF-8 sequence length announced by a
// leading byte, or zero when the byte cannot lead a sequence.
func encodedRuneLength(b byte) int {
	switch {
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

// ReadString reads byte characters up to and including the next newline or
// the end of file and returns them without the terminator. When the end of
// file is reached before any character, [io.EOF] is reported.
func (f *File) ReadString() (string, error) {
	return f.readByteDelimited(false)
}

// ReadLine behaves like [File.ReadString] but includes the trailing
// newline when one was present; content ending at the end of file is
// returned without an appended newline.
func (f *File) ReadLine() (string, error) {
	return f.readByteDelimited(true)
}

func (f *File) readByteDelimited(includeNewline bool) (string, error) {
	if err := f.textRead(OrientationByte); err != nil {
		return "", err
	}

	var result strings.Builder
	var buf [byteStringBufferLength]byte
	size := 0
	total := 0

	for {
		c, err := f.readByte()
		if err == io.EOF {
			if total == 0 {
				return "", io.EOF
			}

			break
		}
		if err != nil {
			return "", err
		}
		total++

		if c == '\n' {
			if includeNewline {
				if size == len(buf) {
					result.Write(buf[:size])
					size = 0
				}
				buf[size] = '\n'
				size++
			}

			break
		}

		buf[size] = c
		size++
		if size == len(buf) {
			result.Write(buf[:size])
			size = 0
		}
	}

	if size > 0 {
		result.Write(buf[:size])
	}

	return result.String(), nil
}

// WriteString writes the byte characters of s and returns the count
// written.
func (f *File) WriteString(s string) (int, error) {
	if err := f.textWrite(OrientationByte); err != nil {
		return 0, err
	}

	return f.writeBytes([]byte(s))
}

// WriteLine writes the byte characters of s followed by a newline and
// returns the total count written including the newline.
func (f *File) WriteLine(s string) (int, error) {
	n, err := f.WriteString(s)
	if err != nil {
		return n, err
	}
	if err := f.WriteChar('\n'); err != nil {
		return n, err
	}

	return n + 1, nil
}

// ReadWideString reads runes up to and including the next newline or the
// end of file and returns them without the terminator. When the end of
// file is reached before any rune, [io.EOF] is reported.
func (f *File) ReadWideString() ([]rune, error) {
	return f.readWideDelimited(false)
}

// ReadWideLine behaves like [File.ReadWideString] but includes the
// trailing newline when one was present; content ending at the end of file
// is returned without an appended newline.
func (f *File) ReadWideLine() ([]rune, error) {
	return f.readWideDelimited(true)
}

func (f *File) readWideDelimited(includeNewline bool) ([]rune, error) {
	if err := f.textRead(OrientationWide); err != nil {
		return nil, err
	}

	var result []rune
	var buf [wideStringBufferLength]rune
	size := 0
	total := 0

	for {
		r, _, err := f.readRune()
		if err == io.EOF {
			if total == 0 {
				return nil, io.EOF
			}

			break
		}
		if err != nil {
			return nil, err
		}
		total++

		if r == '\n' {
			if includeNewline {
				if size == len(buf) {
					result = append(result, buf[:size]...)
					size = 0
				}
				buf[size] = '\n'
				size++
			}

			break
		}

		buf[size] = r
		size++
		if size == len(buf) {
			result = append(result, buf[:size]...)
			size = 0
		}
	}

	if size > 0 {
		result = append(result, buf[:size]...)
	}

	return result, nil
}

// WriteWideString writes the runes of s in their UTF-8 encoding and
// returns the rune count written.
func (f *File) WriteWideString(s []rune) (int, error) {
	if err := f.textWrite(OrientationWide); err != nil {
		return 0, err
	}

	buf := make([]byte, 0, len(s))
	for _, r := range s {
		buf = utf8.AppendRune(buf, r)
	}
	if _, err := f.writeBytes(buf); err != nil {
		return 0, err
	}

	return len(s), nil
}

// WriteWideLine writes the runes of s followed by a newline and returns
// the total rune count written including the newline.
func (f *File) WriteWideLine(s []rune) (int, error) {
	n, err := f.WriteWideString(s)
	if err != nil {
		return n, err
	}
	if _, err := f.WriteRune('\n'); err != nil {
		return n, err
	}

	return n + 1, nil
}
