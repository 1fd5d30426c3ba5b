package fileslug

import "strings"

// compoundExts are multi-part suffixes treated as a single atomic
// extension. Matched case-insensitively; the original casing is kept.
var compoundExts = []string{".tar.gz", ".tar.bz2", ".tar.xz", ".tar.zst"}

// SplitExtension splits a filename into (base, extension) such that
// base+extension reassembles the input byte for byte.
//
// Dotfiles with no further dot (".gitignore", ".env") have an empty base:
// the entire name is the extension. Compound archive suffixes split at
// the suffix boundary. Otherwise the split is at the last dot past
// position 0; names without one have an empty extension.
func SplitExtension(filename string) (string, string) {
	if strings.HasPrefix(filename, ".") && !strings.Contains(filename[1:], ".") {
		return "", filename
	}

	lower := strings.ToLower(filename)
	for _, ext := range compoundExts {
		if strings.HasSuffix(lower, ext) {
			cut := len(filename) - len(ext)
			return filename[:cut], filename[cut:]
		}
	}

	if pos := strings.LastIndex(filename, "."); pos > 0 {
		return filename[:pos], filename[pos:]
	}
	return filename, ""
}
