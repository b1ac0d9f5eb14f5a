package search

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"
)

// sampleSize is how many leading bytes are inspected to classify a file.
const sampleSize = 1024

// ContentType is the result of inspecting a byte sample.
type ContentType int

const (
	ContentUTF8 ContentType = iota
	ContentUTF8BOM
	ContentUTF16LE
	ContentUTF16BE
	ContentUTF32LE
	ContentUTF32BE
	ContentBinary
)

func (c ContentType) String() string {
	switch c {
	case ContentUTF8:
		return "UTF-8"
	case ContentUTF8BOM:
		return "UTF-8-BOM"
	case ContentUTF16LE:
		return "UTF-16LE"
	case ContentUTF16BE:
		return "UTF-16BE"
	case ContentUTF32LE:
		return "UTF-32LE"
	case ContentUTF32BE:
		return "UTF-32BE"
	case ContentBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// IsText reports whether the content should be scanned.
func (c ContentType) IsText() bool {
	return c != ContentBinary
}

// UTF-32 marks are listed before UTF-16 because FF FE 00 00 also starts
// with the UTF-16LE mark.
var byteOrderMarks = []struct {
	mark        []byte
	contentType ContentType
}{
	{[]byte{0xEF, 0xBB, 0xBF}, ContentUTF8BOM},
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, ContentUTF32LE},
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, ContentUTF32BE},
	{[]byte{0xFF, 0xFE}, ContentUTF16LE},
	{[]byte{0xFE, 0xFF}, ContentUTF16BE},
}

var pdfMagic = []byte("%PDF")

// Classify inspects at most the first 1024 bytes of sample.
//
// Rules, in order:
//  1. an empty sample is UTF-8 text
//  2. a leading byte-order mark decides the encoding
//  3. any NUL byte means binary
//  4. a leading %PDF means binary
//  5. invalid UTF-8 means binary, except for one incomplete rune cut off by
//     the sample boundary
//  6. everything else is UTF-8 text
func Classify(sample []byte) ContentType {
	truncated := len(sample) >= sampleSize
	if truncated {
		sample = sample[:sampleSize]
	}
	if len(sample) == 0 {
		return ContentUTF8
	}

	for _, bom := range byteOrderMarks {
		if bytes.HasPrefix(sample, bom.mark) {
			return bom.contentType
		}
	}

	if bytes.IndexByte(sample, 0x00) >= 0 {
		return ContentBinary
	}
	if bytes.HasPrefix(sample, pdfMagic) {
		return ContentBinary
	}
	if !validUTF8Sample(sample, truncated) {
		return ContentBinary
	}
	return ContentUTF8
}

// validUTF8Sample accepts a sample whose only defect is a multi-byte rune
// split by the end of a truncated read.
func validUTF8Sample(b []byte, truncated bool) bool {
	if utf8.Valid(b) {
		return true
	}
	if !truncated {
		return false
	}
	for cut := 1; cut < utf8.UTFMax && cut < len(b); cut++ {
		head, tail := b[:len(b)-cut], b[len(b)-cut:]
		if !utf8.FullRune(tail) && utf8.Valid(head) {
			return true
		}
	}
	return false
}

// IsBinary reads up to the first 1024 bytes of r and classifies them.
// The caller is responsible for rewinding r before scanning it.
func IsBinary(r io.Reader) (bool, error) {
	buf := make([]byte, sampleSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, fmt.Errorf("read sample: %w", err)
	}
	return !Classify(buf[:n]).IsText(), nil
}
