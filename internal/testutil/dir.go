// Package testutil provides temp-directory helpers for rename tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDir wraps a temporary directory with assertion helpers.
type TestDir struct {
	t    *testing.T
	Path string
}

// NewTestDir creates a TestDir backed by t.TempDir.
func NewTestDir(t *testing.T) *TestDir {
	t.Helper()
	return &TestDir{t: t, Path: t.TempDir()}
}

// Join resolves a path relative to the directory.
func (d *TestDir) Join(relPath string) string {
	return filepath.Join(d.Path, relPath)
}

// WriteFile creates a file with the given content, making parent
// directories as needed.
func (d *TestDir) WriteFile(relPath, content string) string {
	d.t.Helper()
	full := d.Join(relPath)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		d.t.Fatalf("mkdir for %s: %v", relPath, err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		d.t.Fatalf("write %s: %v", relPath, err)
	}
	return full
}

// Mkdir creates a subdirectory.
func (d *TestDir) Mkdir(relPath string) string {
	d.t.Helper()
	full := d.Join(relPath)
	if err := os.MkdirAll(full, 0o755); err != nil {
		d.t.Fatalf("mkdir %s: %v", relPath, err)
	}
	return full
}

// ReadFile returns the content of a file under the directory.
func (d *TestDir) ReadFile(relPath string) string {
	d.t.Helper()
	data, err := os.ReadFile(d.Join(relPath))
	if err != nil {
		d.t.Fatalf("read %s: %v", relPath, err)
	}
	return string(data)
}

// AssertFileExists fails the test if the file does not exist.
func (d *TestDir) AssertFileExists(relPath string) {
	d.t.Helper()
	if _, err := os.Lstat(d.Join(relPath)); os.IsNotExist(err) {
		d.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (d *TestDir) AssertFileNotExists(relPath string) {
	d.t.Helper()
	if _, err := os.Lstat(d.Join(relPath)); err == nil {
		d.t.Errorf("expected file to not exist: %s", relPath)
	}
}

// AssertDirExists fails the test if the directory does not exist or is
// not a directory.
func (d *TestDir) AssertDirExists(relPath string) {
	d.t.Helper()
	info, err := os.Stat(d.Join(relPath))
	if os.IsNotExist(err) {
		d.t.Errorf("expected directory to exist: %s", relPath)
		return
	}
	if err == nil && !info.IsDir() {
		d.t.Errorf("expected %s to be a directory, but it's a file", relPath)
	}
}
