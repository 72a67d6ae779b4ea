package u2d

import (
	"io"

	"golang.org/x/text/transform"
)

// bareLF reports whether b[i] is a line feed not preceded by a carriage
// return. Callers must ensure b[i] is in range.
func bareLF(b []byte, i int) bool {
	return b[i] == '\n' && (i == 0 || b[i-1] != '\r')
}

// NeedsConversion reports whether b contains at least one bare line feed:
// an LF (\n) that is not immediately preceded by a CR (\r).
func NeedsConversion(b []byte) bool {
	for i := range b {
		if bareLF(b, i) {
			return true
		}
	}
	return false
}

// Convert returns a copy of b with a CR inserted before every bare line
// feed.
//
// Bytes are never removed or reordered. Whether an LF is bare is decided
// against b, not against the output, so existing CRLF pairs are left as
// they are:
//   - LF (\n) → CRLF (\r\n)
//   - CRLF (\r\n) → CRLF (\r\n)
//   - CR (\r) → CR (\r)
func Convert(b []byte) []byte {
	out := make([]byte, 0, len(b)+len(b)/8)
	for i, ch := range b {
		if bareLF(b, i) {
			out = append(out, '\r')
		}
		out = append(out, ch)
	}
	return out
}

// Transformer returns a transform.Transformer that converts bare line
// feeds to CRLF, with the same results as Convert.
//
// A CRLF pair split across two calls to Transform is recognized.
func Transformer() transform.Transformer { return new(crlfTransformer) }

// NewReader returns a reader that converts bare line feeds read from r
// to CRLF.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, Transformer())
}

type crlfTransformer struct {
	cr bool // Last byte consumed was a CR.
}

func (t *crlfTransformer) Reset() { t.cr = false }

func (t *crlfTransformer) Transform(
	dst, src []byte, _ bool,
) (nDst, nSrc int, err error) {
	for _, ch := range src {
		if ch == '\n' && !t.cr {
			if len(dst)-nDst < 2 {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\r'
			nDst++
		} else if len(dst)-nDst < 1 {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = ch
		nDst++
		nSrc++
		t.cr = ch == '\r'
	}
	return nDst, nSrc, nil
}
