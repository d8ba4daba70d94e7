package translit

import "strings"

// exceptions lists lowercase word fragments in which a digraph-looking
// Latin sequence sits on a morpheme boundary and must stay two separate
// letters (e.g. "Tanjug" is "Тан-југ", not "Тањуг"). Taken from the
// OOoTranslit extension for LibreOffice:
// https://extensions.libreoffice.org/en/extensions/show/oootranslit
var exceptions = map[string]struct{}{
	"tanjug":    {},
	"adžive":    {},
	"nadže":     {},
	"odžive":    {},
	"odžvaka":   {},
	"odžuri":    {},
	"džubori":   {},
	"onjugacij": {},
	"njukcij":   {},
	"njekcij":   {},
	"anjezičn":  {},
}

// maxExceptionLen is the rune length of the longest exception entry.
const maxExceptionLen = 9

// matchException probes the exception set with the lowercase-folded
// text starting at runes[pos], testing lengths from the longest down to
// one. It returns the rune length of the first (longest) hit, or 0 when
// no exception applies. Longer entries win over shorter ones that match
// at the same position.
func matchException(runes []rune, pos int) int {
	limit := maxExceptionLen
	if rem := len(runes) - pos; rem < limit {
		limit = rem
	}
	for l := limit; l >= 1; l-- {
		probe := strings.ToLower(string(runes[pos : pos+l]))
		if _, ok := exceptions[probe]; ok {
			return l
		}
	}
	return 0
}
