package stream_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desertwitch/fileio/stream"
)

func TestPosition_AccountsForBufferedWrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file.txt")

	f, err := stream.Open(path, stream.Text, stream.Write)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	position, err := f.Position()
	require.NoError(t, err)
	assert.Zero(t, position)

	_, err = f.WriteString("buffered")
	require.NoError(t, err)

	// The write is still held in the buffer, yet the logical position has
	// already advanced past it.
	position, err = f.Position()
	require.NoError(t, err)
	assert.Equal(t, int64(8), position)
}

func TestPosition_AccountsForBufferedReads(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, []byte("0123456789"))

	f, err := stream.Open(path, stream.Text, stream.Read)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	for range 3 {
		_, err := f.ReadChar()
		require.NoError(t, err)
	}

	position, err := f.Position()
	require.NoError(t, err)
	assert.Equal(t, int64(3), position)
}

func TestSeek_RepositionsLogically(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, []byte("0123456789"))

	f, err := stream.Open(path, stream.Text, stream.Read)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	for range 4 {
		_, err := f.ReadChar()
		require.NoError(t, err)
	}

	// Relative seeks start from the logical position, not the OS position.
	position, err := f.Seek(2, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(6), position)

	c, err := f.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, byte('6'), c)

	position, err = f.Seek(-2, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(8), position)

	c, err = f.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, byte('8'), c)
}

func TestSeek_DropsPushback(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, []byte("abcd"))

	f, err := stream.Open(path, stream.Text, stream.Read)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	_, err = f.ReadChar()
	require.NoError(t, err)
	require.NoError(t, f.UnreadChar('z'))

	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)

	c, err := f.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), c)
}

func TestEndOfFile_TracksPosition(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, []byte("data"))

	f, err := stream.Open(path, stream.Text, stream.Read)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	eof, err := f.EndOfFile()
	require.NoError(t, err)
	assert.False(t, eof)

	remaining, err := f.BytesRemaining()
	require.NoError(t, err)
	assert.Equal(t, int64(4), remaining)

	_, err = f.Seek(0, io.SeekEnd)
	require.NoError(t, err)

	eof, err = f.EndOfFile()
	require.NoError(t, err)
	assert.True(t, eof)

	require.NoError(t, f.Rewind())

	eof, err = f.EndOfFile()
	require.NoError(t, err)
	assert.False(t, eof)
}

func TestTruncate_GrowPadsWithZeros(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file.bin")

	f, err := stream.Open(path, stream.Binary, stream.WriteExtended)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	_, err = f.Write([]byte{0xAA, 0xAA, 0xAA, 0xAA})
	require.NoError(t, err)

	require.NoError(t, f.Truncate(8))

	length, err := f.Length()
	require.NoError(t, err)
	assert.Equal(t, int64(8), length)

	require.NoError(t, f.Rewind())

	got := make([]byte, 8)
	n, err := f.Read(got)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, []byte{0xAA, 0xAA, 0xAA, 0xAA, 0x00, 0x00, 0x00, 0x00}, got)
}

func TestTruncate_Shrinks(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file.bin")

	f, err := stream.Open(path, stream.Binary, stream.WriteExtended)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	_, err = f.Write([]byte("0123456789"))
	require.NoError(t, err)

	require.NoError(t, f.Truncate(2))

	length, err := f.Length()
	require.NoError(t, err)
	assert.Equal(t, int64(2), length)
}

func TestLength_ReflectsFlushedDataOnly(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file.txt")

	f, err := stream.Open(path, stream.Text, stream.Write)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	_, err = f.WriteString("held back")
	require.NoError(t, err)

	length, err := f.Length()
	require.NoError(t, err)
	assert.Zero(t, length)

	require.NoError(t, f.Flush())

	length, err = f.Length()
	require.NoError(t, err)
	assert.Equal(t, int64(9), length)
}

func TestBlockSize_Positive(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, []byte("sized"))

	f, err := stream.Open(path, stream.Text, stream.Read)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	blockSize, err := f.BlockSize()
	require.NoError(t, err)
	assert.Positive(t, blockSize)
}
