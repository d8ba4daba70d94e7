// Package translit implements lossless, case-preserving transliteration
// between Serbian Cyrillic and Serbian Latin.
//
// Both conversion functions are total: every input character has a
// defined output (identity for characters outside the alphabet), so
// neither function can fail. URLs, email addresses, hashtags, LaTeX
// commands and inline math are detected by the skip matcher and copied
// through byte-for-byte.
package translit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToLatin converts Serbian Cyrillic text to Serbian Latin. Characters
// outside the Cyrillic alphabet (digits, punctuation, other scripts)
// pass through unchanged.
//
// Case is propagated per letter. For the three digraph letters the
// second Latin character is uppercased only when the following source
// letter is itself uppercase, so "ЏАК" becomes "DŽAK" but "Џак"
// becomes "Džak".
func ToLatin(input string) string {
	var out strings.Builder
	out.Grow(len(input) * 2) // Latin forms can be longer

	runes := []rune(input)
	offs := byteOffsets(input)

	i := 0
	for i < len(runes) {
		if n := FindSkipSpan(input[offs[i]:]); n > 0 {
			span := input[offs[i] : offs[i]+n]
			out.WriteString(span)
			i += utf8.RuneCountInString(span)
			continue
		}

		c := runes[i]
		form, ok := cyrToLat[unicode.ToLower(c)]
		if !ok {
			out.WriteRune(c)
			i++
			continue
		}

		first, second := splitForm(form)
		if unicode.IsUpper(c) {
			out.WriteRune(unicode.ToUpper(first))
		} else {
			out.WriteRune(first)
		}
		if second != 0 {
			// The lookahead letter is only peeked here; it is consumed
			// normally on the next iteration.
			if i+1 < len(runes) && unicode.IsUpper(runes[i+1]) {
				out.WriteRune(unicode.ToUpper(second))
			} else {
				out.WriteRune(second)
			}
		}
		i++
	}
	return out.String()
}

// ToCyrillic converts Serbian Latin text to Serbian Cyrillic. Digraphs
// (lj, nj, dž) are merged into single Cyrillic letters unless the
// surrounding text matches a known exception, in which case the letters
// are converted one by one for the length of the exception.
func ToCyrillic(input string) string {
	var out strings.Builder
	out.Grow(len(input))

	runes := []rune(input)
	offs := byteOffsets(input)

	// Digraph merging stays suppressed for positions below this index.
	suppressUntil := 0

	i := 0
	for i < len(runes) {
		if n := FindSkipSpan(input[offs[i]:]); n > 0 {
			span := input[offs[i] : offs[i]+n]
			out.WriteString(span)
			i += utf8.RuneCountInString(span)
			continue
		}

		if i < suppressUntil {
			i = convertRune(&out, runes, i, false)
			continue
		}

		if l := matchException(runes, i); l > 0 {
			suppressUntil = i + l
			i = convertRune(&out, runes, i, false)
			continue
		}

		i = convertRune(&out, runes, i, true)
	}
	return out.String()
}

// ContainsCyrillic reports whether s contains at least one letter of
// the Serbian Cyrillic alphabet. Callers use it to choose a conversion
// direction when none was requested explicitly.
func ContainsCyrillic(s string) bool {
	for _, r := range s {
		if _, ok := cyrToLat[unicode.ToLower(r)]; ok {
			return true
		}
	}
	return false
}

// convertRune emits the Cyrillic equivalent of the letter at runes[i]
// and returns the index of the next unprocessed rune. With digraphs
// enabled the next rune is folded in to probe for a two-letter key
// first; the single-letter key is the fallback. Unmapped runes are
// copied unchanged.
func convertRune(out *strings.Builder, runes []rune, i int, digraphs bool) int {
	c := runes[i]

	if digraphs && i+1 < len(runes) {
		key := string([]rune{unicode.ToLower(c), unicode.ToLower(runes[i+1])})
		if cyr, ok := latToCyr[key]; ok {
			writeCased(out, cyr, unicode.IsUpper(c))
			return i + 2
		}
	}

	if cyr, ok := latToCyr[string(unicode.ToLower(c))]; ok {
		writeCased(out, cyr, unicode.IsUpper(c))
	} else {
		out.WriteRune(c)
	}
	return i + 1
}

func writeCased(out *strings.Builder, c rune, upper bool) {
	if upper {
		out.WriteRune(unicode.ToUpper(c))
	} else {
		out.WriteRune(c)
	}
}

// splitForm decomposes a Latin form into its one or two runes. The
// second rune is zero for single-letter forms.
func splitForm(form string) (first, second rune) {
	for _, r := range form {
		if first == 0 {
			first = r
		} else {
			second = r
		}
	}
	return first, second
}

// byteOffsets returns the byte offset of every rune in s plus a final
// entry for len(s). Skip spans are matched on the raw string, so the
// rune cursor needs a way back to exact byte positions.
func byteOffsets(s string) []int {
	offs := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offs = append(offs, i)
	}
	return append(offs, len(s))
}
