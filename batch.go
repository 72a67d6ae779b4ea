package u2d

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"

	"lesiw.io/fs"
	"lesiw.io/zeros"
)

// ProcessAll calls Process for each name in order and returns one Result
// per name, in the same order. It does not stop at the first failure.
func ProcessAll(ctx context.Context, fsys fs.FS, names []string) []Result {
	return slices.Collect(ProcessEach(ctx, fsys, names))
}

// ProcessEach returns an iterator that calls Process for each name in
// order and yields its Result before moving on to the next name.
// Stopping the iteration leaves the remaining names unprocessed.
func ProcessEach(
	ctx context.Context, fsys fs.FS, names []string,
) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for _, name := range names {
			if !yield(Process(ctx, fsys, name)) {
				return
			}
		}
	}
}

// AnyFailed reports whether any result in results is not Ok.
func AnyFailed(results []Result) bool {
	for _, r := range results {
		if !r.Ok() {
			return true
		}
	}
	return false
}

// Tally counts results by Outcome.
type Tally struct {
	counts zeros.Map[Outcome, int]
}

// Count returns a Tally of results.
func Count(results []Result) *Tally {
	t := new(Tally)
	for _, r := range results {
		t.Add(r.Outcome)
	}
	return t
}

// Add records one more result with outcome o.
func (t *Tally) Add(o Outcome) {
	t.counts.Set(o, t.counts.Get(o)+1)
}

// Get returns the number of results with outcome o.
func (t *Tally) Get(o Outcome) int {
	return t.counts.Get(o)
}

// String summarizes the tally, e.g. "2 converted, 1 binary".
// Outcomes with no results are left out.
func (t *Tally) String() string {
	var parts []string
	for o := Converted; o <= Failed; o++ {
		if n := t.Get(o); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, o))
		}
	}
	if len(parts) == 0 {
		return "no files"
	}
	return strings.Join(parts, ", ")
}
