// Command u2d converts Unix line endings to DOS line endings in place.
//
// Usage:
//
//	u2d [-a] [-n] [-v] [--] <file1> [file2 ...]
//
// Use -- before file names that begin with a dash.
//
// Each file is read in full. Files with a null byte in their first 512
// bytes are skipped as binary, and files with no bare line feeds are left
// alone. Every other file has a CR inserted before each bare line feed and
// is rewritten in place. With -a the new content is written to a temporary
// file that is renamed over the original where that is possible.
//
// Each file's status is printed as soon as the file is done.
//
// u2d exits with status 1 if any file is missing or cannot be converted.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"lesiw.io/defers"
	"lesiw.io/fs/osfs"
	"lesiw.io/prefix"
	"lesiw.io/u2d"
)

var version = "dev"

const usage = `u2d: convert unix file endings to dos
Usage: u2d <file1> [file2 ...]
`

const dashHint = "u2d: use -- before file names that begin with '-'\n"

type cli struct {
	Atomic  bool             `short:"a" help:"Stage writes and rename."`
	DryRun  bool             `short:"n" help:"Report without writing."`
	Verbose bool             `short:"v" help:"Trace file operations."`
	Version kong.VersionFlag `help:"Print the version and exit."`
	Files   []string         `arg:"" optional:"" name:"file" help:"Files."`
}

func main() {
	defer defers.Run()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defers.Add(stop)
	defers.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var (
		params cli
		exit   = -1
	)
	parser, err := kong.New(&params,
		kong.Name("u2d"),
		kong.Description("Convert Unix line endings to DOS line endings."),
		kong.Vars{"version": version},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exit < 0 {
				exit = code
			}
		}),
	)
	if err != nil {
		printf(stderr, "u2d: %v\n", err)
		return 1
	}
	_, err = parser.Parse(args)
	if exit >= 0 {
		return exit // --help or --version.
	}
	if err != nil {
		printf(stderr, "u2d: %v\n", err)
		printf(stderr, dashHint)
		printf(stderr, usage)
		return 1
	}
	if len(params.Files) == 0 {
		printf(stderr, usage)
		return 1
	}

	if params.Verbose {
		old := u2d.Trace
		u2d.Trace = prefix.NewWriter("+ ", stderr)
		defer func() { u2d.Trace = old }()
	}
	if params.DryRun {
		ctx = u2d.WithDryRun(ctx)
	}
	if params.Atomic {
		ctx = u2d.WithAtomicWrite(ctx)
	}

	var results []u2d.Result
	for r := range u2d.ProcessEach(ctx, osfs.New(), params.Files) {
		report(ctx, r, stdout, stderr)
		results = append(results, r)
	}
	if params.Verbose {
		printf(stderr, "u2d: %s\n", u2d.Count(results))
	}
	if u2d.AnyFailed(results) {
		return 1
	}
	return 0
}

func report(ctx context.Context, r u2d.Result, stdout, stderr io.Writer) {
	switch r.Outcome {
	case u2d.Converted:
		if u2d.DryRun(ctx) {
			printf(stdout, "Would convert '%s'\n", r.Path)
		} else {
			printf(stdout, "Converted '%s'\n", r.Path)
		}
	case u2d.SkippedBinary:
		printf(stdout, "Skipping binary file: '%s'\n", r.Path)
	case u2d.SkippedAlreadyConverted:
		printf(stdout,
			"Skipping '%s' - already has DOS line endings\n", r.Path,
		)
	case u2d.SkippedMissing:
		printf(stderr, "Error: File '%s' not found\n", r.Path)
	case u2d.Failed:
		printf(stderr,
			"Error processing '%s': %v\n", r.Path, detail(r.Err),
		)
	}
}

// detail strips the u2d.Error wrapper so only the underlying cause is shown.
func detail(err error) error {
	var fileErr *u2d.Error
	if errors.As(err, &fileErr) {
		return fileErr.Err
	}
	return err
}

func printf(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, format, a...)
}
