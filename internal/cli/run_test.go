package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aidanlsb/slugr/internal/fileslug"
	"github.com/aidanlsb/slugr/internal/testutil"
)

func batchOpts() batchOptions {
	return batchOptions{
		slug:      fileslug.Options{},
		noClobber: true,
	}
}

func TestExecuteBatchRenames(t *testing.T) {
	td := testutil.NewTestDir(t)
	path := td.WriteFile("My Report (Final).txt", "content")

	var stdout, stderr bytes.Buffer
	report := executeBatch([]string{path}, batchOpts(), &stdout, &stderr)

	if report.failed != 0 {
		t.Fatalf("failed = %d, want 0", report.failed)
	}
	if len(report.items) != 1 {
		t.Fatalf("got %d items, want 1", len(report.items))
	}
	item := report.items[0]
	if item.Status != "renamed" {
		t.Errorf("status = %q, want renamed", item.Status)
	}
	if filepath.Base(item.To) != "my-report-final.txt" {
		t.Errorf("renamed to %q", item.To)
	}
	td.AssertFileExists("my-report-final.txt")
	td.AssertFileNotExists("My Report (Final).txt")
}

func TestExecuteBatchDryRun(t *testing.T) {
	td := testutil.NewTestDir(t)
	path := td.WriteFile("My File.txt", "content")

	opts := batchOpts()
	opts.dryRun = true

	var stdout, stderr bytes.Buffer
	report := executeBatch([]string{path}, opts, &stdout, &stderr)

	if report.failed != 0 {
		t.Fatalf("failed = %d, want 0", report.failed)
	}
	td.AssertFileExists("My File.txt")
	td.AssertFileNotExists("my-file.txt")
	if !strings.Contains(stdout.String(), "my-file.txt") {
		t.Errorf("dry-run output missing target: %q", stdout.String())
	}
}

func TestExecuteBatchSkipsAlreadyClean(t *testing.T) {
	td := testutil.NewTestDir(t)
	path := td.WriteFile("already-clean.txt", "content")

	var stdout, stderr bytes.Buffer
	report := executeBatch([]string{path}, batchOpts(), &stdout, &stderr)

	if report.items[0].Status != "skipped" {
		t.Errorf("status = %q, want skipped", report.items[0].Status)
	}
	td.AssertFileExists("already-clean.txt")
}

func TestExecuteBatchCollision(t *testing.T) {
	td := testutil.NewTestDir(t)
	td.WriteFile("my-file.txt", "existing")
	path := td.WriteFile("My File.txt", "new")

	var stdout, stderr bytes.Buffer
	report := executeBatch([]string{path}, batchOpts(), &stdout, &stderr)

	if report.failed != 0 {
		t.Fatalf("failed = %d, want 0", report.failed)
	}
	td.AssertFileExists("my-file.txt")
	td.AssertFileExists("my-file-2.txt")
	if td.ReadFile("my-file.txt") != "existing" {
		t.Error("existing file was overwritten")
	}
}

func TestExecuteBatchRecursiveRenamesChildrenFirst(t *testing.T) {
	td := testutil.NewTestDir(t)
	td.Mkdir("My Photos")
	td.WriteFile(filepath.Join("My Photos", "Beach Day.JPG"), "img")

	opts := batchOpts()
	opts.recursive = true

	var stdout, stderr bytes.Buffer
	report := executeBatch([]string{td.Path}, opts, &stdout, &stderr)

	if report.failed != 0 {
		t.Fatalf("failed = %d: %+v", report.failed, report.items)
	}
	td.AssertDirExists("my-photos")
	td.AssertFileExists(filepath.Join("my-photos", "beach-day.JPG"))
}

func TestExecuteBatchRecursiveKeepsRootName(t *testing.T) {
	td := testutil.NewTestDir(t)
	root := td.Mkdir("Messy Dir")
	td.WriteFile(filepath.Join("Messy Dir", "Some File.txt"), "x")

	opts := batchOpts()
	opts.recursive = true

	var stdout, stderr bytes.Buffer
	executeBatch([]string{root}, opts, &stdout, &stderr)

	// The named root is not renamed; its contents are.
	td.AssertDirExists("Messy Dir")
	td.AssertFileExists(filepath.Join("Messy Dir", "some-file.txt"))
}

func TestExecuteBatchMissingPathWarns(t *testing.T) {
	td := testutil.NewTestDir(t)

	var stdout, stderr bytes.Buffer
	report := executeBatch([]string{td.Join("nope.txt")}, batchOpts(), &stdout, &stderr)

	if len(report.items) != 0 {
		t.Errorf("got %d items, want 0", len(report.items))
	}
	if !strings.Contains(stderr.String(), "warning") {
		t.Errorf("expected warning on stderr, got %q", stderr.String())
	}
}

func TestExecuteBatchInvalidSlugFails(t *testing.T) {
	td := testutil.NewTestDir(t)
	path := td.WriteFile("!!!", "content")

	var stdout, stderr bytes.Buffer
	report := executeBatch([]string{path}, batchOpts(), &stdout, &stderr)

	if report.failed != 1 {
		t.Fatalf("failed = %d, want 1", report.failed)
	}
	if report.items[0].Status != "failed" {
		t.Errorf("status = %q, want failed", report.items[0].Status)
	}
	td.AssertFileExists("!!!")
}

func TestExecuteBatchInteractiveDecline(t *testing.T) {
	td := testutil.NewTestDir(t)
	path := td.WriteFile("My File.txt", "content")

	opts := batchOpts()
	opts.interactive = true
	opts.confirm = func(string) bool { return false }

	var stdout, stderr bytes.Buffer
	report := executeBatch([]string{path}, opts, &stdout, &stderr)

	if report.items[0].Status != "skipped" {
		t.Errorf("status = %q, want skipped", report.items[0].Status)
	}
	td.AssertFileExists("My File.txt")
}

func TestExecuteBatchInteractiveAccept(t *testing.T) {
	td := testutil.NewTestDir(t)
	path := td.WriteFile("My File.txt", "content")

	opts := batchOpts()
	opts.interactive = true
	opts.confirm = func(string) bool { return true }

	var stdout, stderr bytes.Buffer
	executeBatch([]string{path}, opts, &stdout, &stderr)

	td.AssertFileExists("my-file.txt")
}

func TestExecuteBatchSnakeStyle(t *testing.T) {
	td := testutil.NewTestDir(t)
	path := td.WriteFile("My File.txt", "content")

	opts := batchOpts()
	opts.slug = fileslug.Options{Style: fileslug.Snake}

	var stdout, stderr bytes.Buffer
	executeBatch([]string{path}, opts, &stdout, &stderr)

	td.AssertFileExists("my_file.txt")
}

func TestExecuteBatchContinuesAfterFailure(t *testing.T) {
	td := testutil.NewTestDir(t)
	bad := td.WriteFile("!!!", "a")
	good := td.WriteFile("Good File.txt", "b")

	var stdout, stderr bytes.Buffer
	report := executeBatch([]string{bad, good}, batchOpts(), &stdout, &stderr)

	if report.failed != 1 {
		t.Fatalf("failed = %d, want 1", report.failed)
	}
	td.AssertFileExists("good-file.txt")
}
