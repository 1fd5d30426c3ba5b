// Package rename applies slug renames to the filesystem with
// collision-safe target resolution.
//
// Target resolution and the rename itself are deliberately unlocked:
// the existence check and the rename can race with a concurrent external
// actor, and each rename is an independent best-effort operation with no
// retry and no rollback.
package rename

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aidanlsb/slugr/internal/fileslug"
)

// maxCollisionSuffix bounds how many numbered candidates SafeTarget
// tries before giving up, keeping resolution O(1000) stat calls even
// against a pathological directory.
const maxCollisionSuffix = 1000

// Kind tags a Result.
type Kind int

const (
	// Renamed means the file was moved, or would be in dry-run.
	Renamed Kind = iota
	// Skipped means source and target were already identical.
	Skipped
	// Failed means the attempt errored; Result.Err holds the cause.
	Failed
)

// Result is the outcome of a single rename attempt. Skips and failures
// are expected, common outcomes, so they are values here rather than
// returned errors.
type Result struct {
	Kind Kind
	From string
	To   string // resolved target, set when Kind is Renamed
	Err  error  // failure cause, set when Kind is Failed
}

// sameFile reports whether a and b resolve to the same underlying file
// (device and inode on unix; os.SameFile supplies the platform
// equivalent elsewhere). Missing paths are never the same file.
func sameFile(a, b string) bool {
	sa, err := os.Stat(a)
	if err != nil {
		return false
	}
	sb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(sa, sb)
}

// SafeTarget returns a path that will not clobber an existing entry.
//
// A candidate collides when it exists and is not the same underlying
// file as source; the source exception lets a case-only rename
// (File.txt -> file.txt on a case-insensitive filesystem) resolve to the
// target instead of file-2.txt. When noClobber is false or the target is
// free, the target comes back unchanged. Otherwise numbered candidates
// (base-2.ext, base-3.ext, ...) are tried in order, with the suffix
// appended after the whole name for pure dotfiles (.env-2). An error is
// returned once 1000 candidates have collided.
func SafeTarget(target string, noClobber bool, source string) (string, error) {
	collides := func(p string) bool {
		if _, err := os.Lstat(p); err != nil {
			return false
		}
		return source == "" || !sameFile(source, p)
	}

	if !noClobber || !collides(target) {
		return target, nil
	}

	base, ext := fileslug.SplitExtension(filepath.Base(target))
	parent := filepath.Dir(target)

	for n := 2; n <= maxCollisionSuffix+1; n++ {
		var name string
		if base == "" {
			name = fmt.Sprintf("%s-%d", ext, n)
		} else {
			name = fmt.Sprintf("%s-%d%s", base, n, ext)
		}
		if candidate := filepath.Join(parent, name); !collides(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("too many collisions for %q", target)
}

// File renames source to target, resolving collisions per noClobber.
//
// Identical paths are skipped. A case-only rename (source and target are
// the same underlying file) bypasses resolution entirely so the source's
// own directory entry is not mistaken for a collision. In dry-run the
// Result reports what would happen without touching the filesystem.
// Operating system errors come back verbatim inside the Result and are
// never retried.
func File(source, target string, noClobber, dryRun bool) Result {
	if source == target {
		return Result{Kind: Skipped, From: source}
	}

	resolved := target
	if !sameFile(source, target) {
		var err error
		resolved, err = SafeTarget(target, noClobber, source)
		if err != nil {
			return Result{Kind: Failed, From: source, Err: err}
		}
	}

	if dryRun {
		return Result{Kind: Renamed, From: source, To: resolved}
	}
	if err := os.Rename(source, resolved); err != nil {
		return Result{Kind: Failed, From: source, Err: err}
	}
	return Result{Kind: Renamed, From: source, To: resolved}
}
