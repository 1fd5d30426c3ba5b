package fileslug

import (
	"strings"
	"unicode/utf8"
)

// versionDot is the placeholder substituted for dots inside version-like
// sequences ("0.8.34") so word splitting does not break them apart. Word
// segmentation drops control characters, so a placeholder appearing in
// raw input never survives into the output on its own.
const versionDot = '\x01'

func isASCIIDigit(c byte) bool { return c >= '0' && c <= '9' }

// protectVersionDots replaces dots inside version-like digit sequences
// with the placeholder. A version sequence is two or more digit runs
// joined by dots; a dot not immediately followed by a digit ends the
// sequence (backtracking the dot).
func protectVersionDots(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	i := 0
	for i < len(input) {
		if !isASCIIDigit(input[i]) {
			// Non-digit: copy the whole character, which may be multi-byte.
			_, size := utf8.DecodeRuneInString(input[i:])
			b.WriteString(input[i : i+size])
			i += size
			continue
		}

		start := i
		for i < len(input) && isASCIIDigit(input[i]) {
			i++
		}

		groups := 0
		for i < len(input) && input[i] == '.' {
			dot := i
			i++
			if i < len(input) && isASCIIDigit(input[i]) {
				for i < len(input) && isASCIIDigit(input[i]) {
					i++
				}
				groups++
			} else {
				i = dot
				break
			}
		}

		if groups > 0 {
			for j := start; j < i; j++ {
				if input[j] == '.' {
					b.WriteByte(versionDot)
				} else {
					b.WriteByte(input[j])
				}
			}
		} else {
			b.WriteString(input[start:i])
		}
	}

	return b.String()
}

// restoreVersionDots turns placeholders back into dots.
func restoreVersionDots(input string) string {
	return strings.ReplaceAll(input, string(rune(versionDot)), ".")
}
