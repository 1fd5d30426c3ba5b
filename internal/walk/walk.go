// Package walk collects filesystem paths for batch renaming.
package walk

import (
	"os"
	"path/filepath"
)

// WarnFunc receives diagnostics for paths that could not be visited.
type WarnFunc func(format string, args ...any)

// Collect gathers the paths to process, in rename-safe order.
//
// Non-recursive mode returns the given paths as-is (missing ones are
// reported to warn and dropped). In recursive mode each directory is
// expanded bottom-up, children before the directories that contain
// them, so renaming a directory never invalidates the path of an entry
// still waiting its turn. The given roots themselves are not included
// when expanded. Symlinks are collected but never followed.
func Collect(paths []string, recursive bool, warn WarnFunc) []string {
	if warn == nil {
		warn = func(string, ...any) {}
	}

	var result []string
	for _, path := range paths {
		info, err := os.Lstat(path)
		if err != nil {
			warn("%s: not found", path)
			continue
		}
		if !recursive || !info.IsDir() {
			result = append(result, path)
			continue
		}
		result = append(result, collectTree(path, warn)...)
	}
	return result
}

// collectTree walks root depth-first, emitting every entry after its
// children and excluding root itself.
func collectTree(root string, warn WarnFunc) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		warn("%s: %v", root, err)
		return nil
	}

	var result []string
	for _, entry := range entries {
		child := filepath.Join(root, entry.Name())
		if entry.IsDir() {
			result = append(result, collectTree(child, warn)...)
		}
		result = append(result, child)
	}
	return result
}
