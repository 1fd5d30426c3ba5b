// Package fileslug converts filenames and plain text into clean,
// shell-safe, filesystem-safe slugs.
//
// Unlike URL slug helpers, fileslug is filename-aware: it preserves file
// extensions, dotfiles, compound extensions (".tar.gz"), and embedded
// version numbers ("1.2.3"). Transliteration is delegated to
// gosimple/unidecode unless unicode preservation is requested.
//
// Every function in this package is a pure function of its inputs and is
// safe to call concurrently.
package fileslug

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gosimple/unidecode"
)

// Style selects how slug words are joined.
type Style int

const (
	// Kebab joins words with dashes: "my-cool-file.txt" (default).
	Kebab Style = iota
	// Snake joins words with underscores: "my_cool_file.txt"
	Snake
	// Camel title-cases every word after the first: "myCoolFile.txt"
	Camel
	// Pascal title-cases every word: "MyCoolFile.txt"
	Pascal
)

// String returns the config/flag name of the style.
func (s Style) String() string {
	switch s {
	case Snake:
		return "snake"
	case Camel:
		return "camel"
	case Pascal:
		return "pascal"
	default:
		return "kebab"
	}
}

// ParseStyle converts a config/flag value to a Style. The empty string
// means Kebab.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "kebab":
		return Kebab, nil
	case "snake":
		return Snake, nil
	case "camel":
		return Camel, nil
	case "pascal":
		return Pascal, nil
	default:
		return Kebab, fmt.Errorf("unknown style %q (expected kebab, snake, camel, or pascal)", name)
	}
}

// DefaultMaxFilenameBytes is the byte budget for a generated filename,
// matching the single-name limit of common filesystems.
const DefaultMaxFilenameBytes = 255

// Options control the slugification pipeline. The zero value means
// kebab-case, ASCII transliteration, and the default length budget.
type Options struct {
	// Style is the word separator style.
	Style Style

	// KeepUnicode skips ASCII transliteration and preserves unicode
	// letters and digits, only normalizing separators.
	KeepUnicode bool

	// MaxBytes caps the byte length of the result. Zero means
	// DefaultMaxFilenameBytes.
	MaxBytes int
}

func (o Options) maxBytes() int {
	if o.MaxBytes > 0 {
		return o.MaxBytes
	}
	return DefaultMaxFilenameBytes
}

// Brackets are dropped but their contents survive as separate words.
var bracketReplacer = strings.NewReplacer(
	"(", " ", ")", " ",
	"[", " ", "]", " ",
	"{", " ", "}", " ",
)

// Slugify converts a filename to a clean slug while keeping its
// extension, dotfile status, and embedded version numbers.
//
// Pure dotfiles (".gitignore") are returned unchanged. A base that
// slugifies to nothing leaves just the extension. Results never exceed
// the byte budget; over-long names are truncated at a word boundary
// where possible.
func Slugify(filename string, opts Options) string {
	if filename == "" {
		return ""
	}

	base, ext := SplitExtension(filename)
	if base == "" {
		// Dotfile with no base: nothing to transform.
		return filename
	}

	// A dotfile with a secondary extension (".env.local") has a base of
	// ".env"; the leading dot is restored after word joining.
	isDotfile := strings.HasPrefix(base, ".")

	words := splitWords(base, opts)
	if len(words) == 0 {
		return ext
	}

	slug := restoreVersionDots(joinWords(words, opts.Style))
	if isDotfile {
		slug = "." + slug
	}
	slug = truncateBase(slug, ext, opts.maxBytes())

	return slug + ext
}

// SlugifyText slugifies arbitrary text with no filename semantics: dots
// are ordinary separators, dotfiles get no special treatment, and the
// whole byte budget goes to the text. Use it for URL slugs and
// identifiers rather than filenames.
func SlugifyText(input string, opts Options) string {
	if input == "" {
		return ""
	}

	words := splitWords(input, opts)
	if len(words) == 0 {
		return ""
	}

	slug := restoreVersionDots(joinWords(words, opts.Style))
	return truncateBase(slug, "", opts.maxBytes())
}

// splitWords runs the middle of the pipeline: transliteration, bracket
// stripping, version-dot protection, segmentation, and lower-casing.
func splitWords(text string, opts Options) []string {
	if !opts.KeepUnicode {
		text = unidecode.Unidecode(text)
	}
	text = bracketReplacer.Replace(text)
	text = protectVersionDots(text)

	isWordRune := func(r rune) bool {
		if r == versionDot {
			return true
		}
		if opts.KeepUnicode {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		}
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
	}

	fields := strings.FieldsFunc(text, func(r rune) bool { return !isWordRune(r) })
	words := make([]string, 0, len(fields))
	for _, w := range fields {
		words = append(words, strings.ToLower(w))
	}
	return words
}

func joinWords(words []string, style Style) string {
	switch style {
	case Snake:
		return strings.Join(words, "_")
	case Camel, Pascal:
		var b strings.Builder
		for i, w := range words {
			if i == 0 && style == Camel {
				b.WriteString(w)
				continue
			}
			b.WriteString(titleWord(w))
		}
		return b.String()
	default:
		return strings.Join(words, "-")
	}
}

func titleWord(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if size == 0 {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}

// truncateBase cuts base so that base+ext fits within maxBytes. The cut
// always lands on a rune boundary, and prefers the last dash or
// underscore inside the budget so a broken partial word is not shipped.
func truncateBase(base, ext string, maxBytes int) string {
	budget := maxBytes - len(ext)
	if budget < 0 {
		budget = 0
	}
	if len(base) <= budget {
		return base
	}

	for budget > 0 && !utf8.RuneStart(base[budget]) {
		budget--
	}
	truncated := base[:budget]

	if pos := strings.LastIndexAny(truncated, "-_"); pos > 0 {
		return truncated[:pos]
	}
	return truncated
}
