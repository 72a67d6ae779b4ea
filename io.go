package u2d

import "io"

// Trace receives one line per file operation performed by Process.
// It discards everything by default.
var Trace io.Writer = io.Discard
