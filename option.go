package u2d

import "context"

type dryRunKey struct{}

// WithDryRun returns a new context that makes Process report conversions
// without writing them.
func WithDryRun(ctx context.Context) context.Context {
	return context.WithValue(ctx, dryRunKey{}, true)
}

// DryRun reports whether ctx was returned by WithDryRun.
func DryRun(ctx context.Context) bool {
	v, _ := ctx.Value(dryRunKey{}).(bool)
	return v
}

type atomicKey struct{}

// WithAtomicWrite returns a new context that makes Process stage converted
// content in a temporary file and rename it over the original.
//
// Symbolic links, files with more than one hard link, and files whose
// directory does not allow staging are still overwritten in place.
func WithAtomicWrite(ctx context.Context) context.Context {
	return context.WithValue(ctx, atomicKey{}, true)
}

// AtomicWrite reports whether ctx was returned by WithAtomicWrite.
func AtomicWrite(ctx context.Context) bool {
	v, _ := ctx.Value(atomicKey{}).(bool)
	return v
}
