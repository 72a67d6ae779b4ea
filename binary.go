package u2d

import "bytes"

// sniffLen is the number of leading bytes examined by IsBinary.
const sniffLen = 512

// IsBinary reports whether b looks like binary data.
//
// Only the first 512 bytes are examined. A null byte anywhere in that
// window marks the data as binary; null bytes past it are not seen.
// Empty input is not binary.
func IsBinary(b []byte) bool {
	return bytes.IndexByte(b[:min(len(b), sniffLen)], 0) >= 0
}
