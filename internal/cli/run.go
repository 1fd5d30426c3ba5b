package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/aidanlsb/slugr/internal/fileslug"
	"github.com/aidanlsb/slugr/internal/rename"
	"github.com/aidanlsb/slugr/internal/ui"
	"github.com/aidanlsb/slugr/internal/walk"
)

// batchOptions bundles everything the batch driver needs, so tests can
// run it without going through cobra.
type batchOptions struct {
	slug        fileslug.Options
	noClobber   bool
	dryRun      bool
	verbose     bool
	interactive bool
	recursive   bool
	// confirm asks before a rename in interactive mode; nil means yes.
	confirm func(message string) bool
}

// RenameItem is one batch entry in JSON output.
type RenameItem struct {
	From   string `json:"from"`
	To     string `json:"to,omitempty"`
	Status string `json:"status"` // renamed | skipped | failed
	Error  string `json:"error,omitempty"`
}

var errBatchFailed = errors.New("some renames failed")

// runBatch drives the whole rename pass and reports per-item outcomes.
// Failures never abort the batch; the returned error only signals that
// at least one item failed, for exit-status mapping.
func runBatch(paths []string, opts batchOptions) error {
	report := executeBatch(paths, opts, os.Stdout, os.Stderr)

	if isJSONOutput() {
		outputSuccess(map[string]any{"items": report.items}, &Meta{Count: len(report.items)})
		if report.failed > 0 {
			return errSilentExit
		}
		return nil
	}

	if report.failed > 0 {
		return errBatchFailed
	}
	return nil
}

type batchReport struct {
	items  []RenameItem
	failed int
}

// executeBatch processes every path sequentially, files before their
// parent directories when recursing. One pass, no retries.
func executeBatch(paths []string, opts batchOptions, stdout, stderr io.Writer) batchReport {
	warn := func(format string, args ...any) {
		fmt.Fprintf(stderr, "slugr: warning: "+format+"\n", args...)
	}

	var report batchReport
	for _, path := range walk.Collect(paths, opts.recursive, warn) {
		filename := filepath.Base(path)
		if filename == "." || filename == ".." || filename == string(filepath.Separator) {
			continue
		}

		newName := fileslug.Slugify(filename, opts.slug)

		// An empty, "." or ".." slug would alias the parent directory.
		if newName == "" || newName == "." || newName == ".." {
			fmt.Fprintf(stderr, "slugr: cannot rename %q: slugified name is invalid\n", path)
			report.items = append(report.items, RenameItem{
				From: path, Status: "failed", Error: "slugified name is invalid",
			})
			report.failed++
			continue
		}

		target := filepath.Join(filepath.Dir(path), newName)

		if opts.interactive && path != target && opts.confirm != nil {
			if !opts.confirm(fmt.Sprintf("rename %q %s %q?", path, ui.Arrow(), target)) {
				report.items = append(report.items, RenameItem{From: path, Status: "skipped"})
				continue
			}
		}

		res := rename.File(path, target, opts.noClobber, opts.dryRun)
		switch res.Kind {
		case rename.Renamed:
			if opts.dryRun || opts.verbose {
				fmt.Fprintf(stdout, "%s %s %s\n", res.From, ui.Arrow(), ui.FilePath(res.To))
			}
			report.items = append(report.items, RenameItem{From: res.From, To: res.To, Status: "renamed"})
		case rename.Skipped:
			report.items = append(report.items, RenameItem{From: res.From, Status: "skipped"})
		case rename.Failed:
			fmt.Fprintf(stderr, "%s\n", ui.Errorf("error renaming %q: %v", res.From, res.Err))
			report.items = append(report.items, RenameItem{
				From: res.From, Status: "failed", Error: res.Err.Error(),
			})
			report.failed++
		}
	}
	return report
}

// readStdinPaths reads newline-separated paths from a non-terminal
// stdin, skipping empty lines. A terminal stdin yields nothing.
func readStdinPaths() []string {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return nil
	}
	var paths []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}
