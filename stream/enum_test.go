package stream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/desertwitch/fileio/stream"
)

func TestAccessMode_ModeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode     stream.AccessMode
		ftype    stream.FileType
		expected string
	}{
		{stream.Read, stream.Text, "r"},
		{stream.Write, stream.Text, "w"},
		{stream.Append, stream.Text, "a"},
		{stream.ReadExtended, stream.Text, "r+"},
		{stream.WriteExtended, stream.Text, "w+"},
		{stream.AppendExtended, stream.Text, "a+"},
		{stream.Read, stream.Binary, "rb"},
		{stream.Write, stream.Binary, "wb"},
		{stream.Append, stream.Binary, "ab"},
		{stream.ReadExtended, stream.Binary, "rb+"},
		{stream.WriteExtended, stream.Binary, "wb+"},
		{stream.AppendExtended, stream.Binary, "ab+"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.mode.ModeString(tt.ftype))
	}
}

func TestAccessMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "reading", stream.Read.String())
	assert.Equal(t, "extended appending", stream.AppendExtended.String())
}

func TestOrientation_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unset", stream.OrientationUnset.String())
	assert.Equal(t, "byte", stream.OrientationByte.String())
	assert.Equal(t, "wide", stream.OrientationWide.String())
}
