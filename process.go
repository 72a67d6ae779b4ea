package u2d

import (
	"context"
	"errors"
	"fmt"

	"lesiw.io/fs"
	"lesiw.io/fs/path"
)

// tempSuffix names the sibling file converted content is staged in before
// it is renamed over the original.
const tempSuffix = ".u2d~"

var (
	errIsDir      = errors.New("is a directory")
	errLinked     = errors.New("file is a link")
	errTempExists = errors.New("temporary file already exists")
)

// Process converts the line endings of the named file in fsys.
//
// The file is read in full and left alone if it is binary (see IsBinary)
// or has no bare line feeds (see NeedsConversion). Otherwise its content
// is replaced by Convert's output. The file is truncated and rewritten in
// place, so symbolic links are followed and hard links keep sharing
// content.
//
// Under WithAtomicWrite, the replacement is first staged in a temporary
// file next to the original and renamed over it, carrying the original's
// permission bits. If staging is not possible the file is overwritten in
// place as usual.
//
// Under WithDryRun, Process stops short of writing and reports Converted.
//
// Failures are reported through the Result's Outcome and Err.
func Process(ctx context.Context, fsys fs.FS, name string) Result {
	if err := ctx.Err(); err != nil {
		return Result{Path: name, Outcome: Failed, Err: err}
	}

	info, err := fs.Stat(ctx, fsys, name)
	if err != nil {
		return Result{
			Path:    name,
			Outcome: SkippedMissing,
			Err:     &Error{Op: "stat", Path: name, Err: err},
		}
	}
	if info.IsDir() {
		return Result{
			Path:    name,
			Outcome: Failed,
			Err:     &Error{Op: "read", Path: name, Err: errIsDir},
		}
	}

	buf, err := fs.ReadFile(ctx, fsys, name)
	if err != nil {
		return Result{
			Path:    name,
			Outcome: Failed,
			Err:     &Error{Op: "read", Path: name, Err: err},
		}
	}
	trace("read %s (%d bytes)", name, len(buf))

	if IsBinary(buf) {
		return Result{Path: name, Outcome: SkippedBinary}
	}
	if !NeedsConversion(buf) {
		return Result{Path: name, Outcome: SkippedAlreadyConverted}
	}

	out := Convert(buf)
	if DryRun(ctx) {
		trace("skip write %s (dry run, %d bytes)", name, len(out))
		return Result{Path: name, Outcome: Converted}
	}
	if err := writeFile(ctx, fsys, name, info.Mode().Perm(), out); err != nil {
		return Result{
			Path:    name,
			Outcome: Failed,
			Err:     &Error{Op: "write", Path: name, Err: err},
		}
	}
	return Result{Path: name, Outcome: Converted}
}

func writeFile(
	ctx context.Context, fsys fs.FS, name string, mode fs.Mode, data []byte,
) error {
	if AtomicWrite(ctx) {
		err := stageFile(ctx, fsys, name, mode, data)
		if err == nil {
			return nil
		}
		trace("stage %s: %v", name, err)
	}
	trace("write %s (%d bytes)", name, len(data))
	return fs.WriteFile(ctx, fsys, name, data)
}

// stageFile writes data to a sibling temporary file and renames it over
// name. On error the temporary file is gone and name is untouched.
func stageFile(
	ctx context.Context, fsys fs.FS, name string, mode fs.Mode, data []byte,
) error {
	info, err := fs.Lstat(ctx, fsys, name)
	if err != nil {
		return err
	}
	if info.Mode()&fs.ModeSymlink != 0 || links(info) > 1 {
		return errLinked
	}
	tmp := path.Join(path.Dir(name), "."+path.Base(name)+tempSuffix)
	if _, err := fs.Lstat(ctx, fsys, tmp); err == nil {
		return fmt.Errorf("%s: %w", tmp, errTempExists)
	}

	trace("write %s (%d bytes)", tmp, len(data))
	err = fs.WriteFile(fs.WithFileMode(ctx, mode), fsys, tmp, data)
	if err == nil {
		// Creation is subject to the umask.
		err = fs.Chmod(ctx, fsys, tmp, mode)
		if errors.Is(err, fs.ErrUnsupported) {
			err = nil
		}
	}
	if err == nil {
		trace("rename %s %s", tmp, name)
		if err = fs.Rename(ctx, fsys, tmp, name); err == nil {
			return nil
		}
	}
	// Try to not leave the temporary file around, but ignore errors.
	_ = fs.Remove(ctx, fsys, tmp)
	return err
}

func trace(format string, a ...any) {
	_, _ = fmt.Fprintf(Trace, format+"\n", a...)
}
