package u2d

import (
	"errors"
	"fmt"
)

// Error records a failed operation on a file.
type Error struct {
	// Op is the operation that failed: "stat", "read", or "write".
	Op string

	// Path is the file the operation was applied to.
	Path string

	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Missing returns true if err represents a file that could not be found.
//
// A u2d.Error is considered missing when its Op is "stat": any failure to
// stat a path is treated as the path not existing.
//
// Missing uses errors.As to probe the error chain for a u2d.Error.
// If no u2d.Error exists in the chain, Missing returns false.
func Missing(err error) bool {
	var fileErr *Error
	if !errors.As(err, &fileErr) {
		return false
	}
	return fileErr.Op == "stat"
}
