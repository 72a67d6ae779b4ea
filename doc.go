// Package u2d converts Unix line endings to DOS line endings.
//
// A bare line feed is an LF (\n) that is not immediately preceded by a
// CR (\r). [Convert] inserts a CR before each bare line feed, leaving
// existing CRLF pairs alone, and [NeedsConversion] reports whether there
// is anything to convert.
//
//	u2d.Convert([]byte("one\ntwo\r\nthree\n"))
//	// "one\r\ntwo\r\nthree\r\n"
//
// [IsBinary] is a cheap heuristic for skipping non-text data: it looks for
// a null byte in the first 512 bytes.
//
// # Files
//
// [Process] applies the conversion to one file in a [lesiw.io/fs.FS].
// The file is read in full, classified, and rewritten only when needed.
// Every call returns a [Result]; errors never abort a batch.
//
//	fsys := osfs.New()
//	for r := range u2d.ProcessEach(ctx, fsys, []string{"a.txt", "b.bat"}) {
//	    fmt.Println(r.Path, r.Outcome)
//	}
//
// Files are rewritten in place. [WithAtomicWrite] stages the rewrite in a
// temporary file beside the original and renames it into place where that
// is safe. Use [WithDryRun] to classify files without writing them.
//
// # Streams
//
// [NewReader] and [Transformer] perform the same conversion on a stream.
// A CRLF pair split across reads is not doubled.
//
//	io.Copy(os.Stdout, u2d.NewReader(os.Stdin))
package u2d
