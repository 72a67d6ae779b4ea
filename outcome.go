package u2d

import "fmt"

// Outcome classifies what happened to a single file.
type Outcome int

const (
	Converted Outcome = iota
	SkippedBinary
	SkippedAlreadyConverted
	SkippedMissing
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Converted:
		return "converted"
	case SkippedBinary:
		return "binary"
	case SkippedAlreadyConverted:
		return "unchanged"
	case SkippedMissing:
		return "missing"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the outcome of processing one file.
type Result struct {
	Path    string
	Outcome Outcome

	// Err is set when Outcome is SkippedMissing or Failed.
	Err error
}

// Ok reports whether r counts as a success for the batch.
// Converted and skipped files succeed; missing and failed files do not.
func (r Result) Ok() bool {
	return r.Outcome != SkippedMissing && r.Outcome != Failed
}
