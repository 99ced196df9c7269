package stream_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/desertwitch/fileio/fileerror"
	"github.com/desertwitch/fileio/stream"
)

// writeFixture creates a file with the given content under a per-test
// directory and returns its path.
func writeFixture(t *testing.T, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	return path
}

func TestOpenClose_ReleasesOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file.txt")

	f, err := stream.Open(path, stream.Text, stream.Write)
	require.NoError(t, err)

	assert.Equal(t, path, f.Path())
	assert.Equal(t, stream.Text, f.Type())
	assert.Equal(t, stream.Write, f.Mode())
	assert.True(t, f.IsText())
	assert.False(t, f.IsBinary())
	assert.True(t, f.IsWriteOnly())
	assert.GreaterOrEqual(t, f.Fd(), 0)

	require.NoError(t, f.Close())
	require.ErrorIs(t, f.Close(), stream.ErrClosed)

	_, err = f.WriteString("late")
	require.ErrorIs(t, err, stream.ErrClosed)

	_, err = f.Position()
	require.ErrorIs(t, err, stream.ErrClosed)
}

func TestOpen_Nonexistent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := stream.Open(path, stream.Text, stream.Read)
	require.Error(t, err)

	assert.Equal(t, fileerror.KindOpen, fileerror.KindOf(err))
	assert.True(t, errors.Is(err, unix.ENOENT))

	var fileErr *fileerror.Error
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, path, fileErr.Path)
	assert.Contains(t, fileErr.Message, "for reading")
}

func TestClose_FlushesBufferedWrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file.txt")

	f, err := stream.Open(path, stream.Text, stream.Write)
	require.NoError(t, err)

	_, err = f.WriteString("buffered until close")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "buffered until close", string(content))
}

func TestBinary_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file.bin")
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x42}

	f, err := stream.Open(path, stream.Binary, stream.WriteExtended)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	n, err := f.Write(payload)
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)

	require.NoError(t, f.Rewind())

	got := make([]byte, len(payload))
	n, err = f.Read(got)
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)
	assert.Equal(t, payload, got)
}

func TestBinary_PartialReadAtEndOfFile(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, []byte{0x01, 0x02, 0x03})

	f, err := stream.Open(path, stream.Binary, stream.Read)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	got := make([]byte, 8)
	n, err := f.Read(got)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = f.Read(got)
	require.ErrorIs(t, err, io.EOF)
	assert.Zero(t, n)
}

func TestReadElements_Partial(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, make([]byte, 8))

	f, err := stream.Open(path, stream.Binary, stream.Read)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	buf := make([]byte, 12)
	elements, err := f.ReadElements(buf, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, elements)

	eof, err := f.EndOfFile()
	require.NoError(t, err)
	assert.True(t, eof)

	elements, err = f.ReadElements(buf, 4, 3)
	require.ErrorIs(t, err, io.EOF)
	assert.Zero(t, elements)
}

func TestReadElements_SplitElement(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, make([]byte, 10))

	f, err := stream.Open(path, stream.Binary, stream.Read)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	buf := make([]byte, 12)
	elements, err := f.ReadElements(buf, 4, 3)
	require.ErrorIs(t, err, fileerror.ErrUnexpectedEOF)
	assert.Equal(t, 2, elements)
}

func TestReadElements_Validation(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, []byte{0x01})

	f, err := stream.Open(path, stream.Binary, stream.Read)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	_, err = f.ReadElements(make([]byte, 8), 0, 2)
	require.ErrorIs(t, err, stream.ErrInvalidElementSize)

	_, err = f.ReadElements(make([]byte, 4), 4, 2)
	require.ErrorIs(t, err, stream.ErrBufferTooSmall)
}

func TestWriteElements_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file.bin")
	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	f, err := stream.Open(path, stream.Binary, stream.WriteExtended)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	elements, err := f.WriteElements(payload, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, elements)

	require.NoError(t, f.Rewind())

	got := make([]byte, 8)
	elements, err = f.ReadElements(got, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, elements)
	assert.Equal(t, payload, got)
}

func TestTypeGates(t *testing.T) {
	t.Parallel()

	textPath := writeFixture(t, []byte("text"))
	binPath := writeFixture(t, []byte{0x01})

	textFile, err := stream.Open(textPath, stream.Text, stream.Read)
	require.NoError(t, err)
	defer textFile.Close() //nolint:errcheck

	_, err = textFile.Read(make([]byte, 4))
	require.ErrorIs(t, err, stream.ErrNotBinaryFile)

	binFile, err := stream.Open(binPath, stream.Binary, stream.Read)
	require.NoError(t, err)
	defer binFile.Close() //nolint:errcheck

	_, err = binFile.ReadChar()
	require.ErrorIs(t, err, stream.ErrNotTextFile)
}

func TestModeGates(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, []byte("content"))

	readOnly, err := stream.Open(path, stream.Text, stream.Read)
	require.NoError(t, err)
	defer readOnly.Close() //nolint:errcheck

	_, err = readOnly.WriteString("denied")
	require.ErrorIs(t, err, stream.ErrNotWritable)

	writeOnly, err := stream.Open(filepath.Join(t.TempDir(), "out.txt"), stream.Text, stream.Write)
	require.NoError(t, err)
	defer writeOnly.Close() //nolint:errcheck

	_, err = writeOnly.ReadChar()
	require.ErrorIs(t, err, stream.ErrNotReadable)
}

func TestSetBuffer_LineModeFlushesOnNewline(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file.txt")

	f, err := stream.Open(path, stream.Text, stream.Write)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	require.NoError(t, f.SetBuffer(stream.BufferLine, 64))

	_, err = f.WriteString("held")
	require.NoError(t, err)

	length, err := f.Length()
	require.NoError(t, err)
	assert.Zero(t, length)

	require.NoError(t, f.WriteChar('\n'))

	length, err = f.Length()
	require.NoError(t, err)
	assert.Equal(t, int64(5), length)
}

func TestSetBuffer_NoneWritesThrough(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file.txt")

	f, err := stream.Open(path, stream.Text, stream.Write)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	require.NoError(t, f.SetBuffer(stream.BufferNone, 0))

	_, err = f.WriteString("direct")
	require.NoError(t, err)

	length, err := f.Length()
	require.NoError(t, err)
	assert.Equal(t, int64(6), length)
}

func TestFlush_MakesWritesVisible(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file.txt")

	f, err := stream.Open(path, stream.Text, stream.Write)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	_, err = f.WriteString("pending")
	require.NoError(t, err)

	length, err := f.Length()
	require.NoError(t, err)
	assert.Zero(t, length)

	require.NoError(t, f.Flush())

	length, err = f.Length()
	require.NoError(t, err)
	assert.Equal(t, int64(7), length)
}

func TestSetOptimalBuffer(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, []byte("sized by the filesystem"))

	f, err := stream.Open(path, stream.Text, stream.Read)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	require.NoError(t, f.SetOptimalBuffer())

	line, err := f.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "sized by the filesystem", line)
}

func TestAdvisoryLock(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, []byte("locked"))

	f, err := stream.Open(path, stream.Text, stream.Read)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	require.True(t, f.TryLock())
	assert.False(t, f.TryLock())
	f.Unlock()

	f.Lock()
	f.Unlock()
}

func TestReadAfterWrite_SeesBufferedData(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file.bin")

	f, err := stream.Open(path, stream.Binary, stream.WriteExtended)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	_, err = f.Write([]byte("interleaved"))
	require.NoError(t, err)

	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)

	got := make([]byte, 11)
	n, err := f.Read(got)
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, "interleaved", string(got))
}
