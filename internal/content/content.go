// Package content holds byte-level checks shared by the importer and the
// remote fetcher for deciding whether raw bytes are usable lyric text.
package content

import (
	"bytes"
	"unicode/utf8"
)

// IsBinary checks the first 512 bytes for null bytes.
func IsBinary(data []byte) bool {
	const maxCheckSize = 512
	size := min(len(data), maxCheckSize)
	return bytes.IndexByte(data[:size], 0) != -1
}

// IsValidUTF8 validates the data is valid UTF-8.
func IsValidUTF8(data []byte) bool {
	return utf8.Valid(data)
}

// StripBOM removes a UTF-8 BOM (0xEF, 0xBB, 0xBF) if present.
func StripBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}
