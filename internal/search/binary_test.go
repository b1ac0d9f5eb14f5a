package search

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	// "é" is 0xC3 0xA9; placing it across the 1024 boundary truncates it.
	split := append(bytes.Repeat([]byte("a"), sampleSize-1), 0xC3, 0xA9)

	tests := []struct {
		name   string
		sample []byte
		want   ContentType
	}{
		{"empty is text", nil, ContentUTF8},
		{"ascii", []byte("hello\nworld\n"), ContentUTF8},
		{"utf8 multibyte", []byte("héllo wörld ✓\n"), ContentUTF8},
		{"whitespace and control chars", []byte("a\tb\r\n\x1b[0m\f"), ContentUTF8},
		{"nul byte", []byte("abc\x00def"), ContentBinary},
		{"pdf magic", []byte("%PDF-1.7\n"), ContentBinary},
		{"invalid utf8", []byte("abc\xff\xfedef"), ContentBinary},
		{"latin1 text", []byte("caf\xe9\n"), ContentBinary},
		{"utf8 bom", []byte("\xef\xbb\xbfhello"), ContentUTF8BOM},
		{"utf16le bom", []byte("\xff\xfeh\x00i\x00"), ContentUTF16LE},
		{"utf16be bom", []byte("\xfe\xff\x00h\x00i"), ContentUTF16BE},
		{"utf32le bom", []byte("\xff\xfe\x00\x00h\x00\x00\x00"), ContentUTF32LE},
		{"utf32be bom", []byte("\x00\x00\xfe\xff\x00\x00\x00h"), ContentUTF32BE},
		{"rune split at sample boundary", split, ContentUTF8},
		{"nul after first 1024 bytes ignored", append(bytes.Repeat([]byte("a"), sampleSize), 0x00), ContentUTF8},
		{"truncated rune inside short sample", []byte("abc\xc3"), ContentBinary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.sample))
		})
	}
}

func TestIsBinary(t *testing.T) {
	t.Run("text reader", func(t *testing.T) {
		binary, err := IsBinary(strings.NewReader("just text\n"))
		require.NoError(t, err)
		assert.False(t, binary)
	})

	t.Run("empty reader", func(t *testing.T) {
		binary, err := IsBinary(strings.NewReader(""))
		require.NoError(t, err)
		assert.False(t, binary)
	})

	t.Run("nul in first chunk", func(t *testing.T) {
		binary, err := IsBinary(bytes.NewReader([]byte{'E', 'L', 'F', 0x00, 0x01}))
		require.NoError(t, err)
		assert.True(t, binary)
	})

	t.Run("read error", func(t *testing.T) {
		_, err := IsBinary(failingReader{})
		require.Error(t, err)
		assert.ErrorIs(t, err, errBrokenRead)
	})
}

var errBrokenRead = errors.New("broken read")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errBrokenRead }

func TestContentTypeString(t *testing.T) {
	assert.Equal(t, "binary", ContentBinary.String())
	assert.Equal(t, "UTF-16LE", ContentUTF16LE.String())
	assert.True(t, ContentUTF8.IsText())
	assert.False(t, ContentBinary.IsText())
}
