package translit

import "regexp"

// skipPatterns identifies spans that must pass through untouched. Every
// pattern is anchored with ^ because matching happens at the current
// scan position only. Order matters: the first matching rule wins.
var skipPatterns = []*regexp.Regexp{
	// Web addresses
	regexp.MustCompile(`^(https?://)?[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_\+.~#?&//=]*)`),
	// Email addresses
	regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
	// Hashtags
	regexp.MustCompile(`^#[\p{L}\p{N}_]+`),
	// LaTeX environments
	regexp.MustCompile(`^\\begin\{[\p{L}\p{N}_]+\}`),
	regexp.MustCompile(`^\\end\{[\p{L}\p{N}_]+\}`),
	// LaTeX commands
	regexp.MustCompile(`^\\[\p{L}\p{N}_]+`),
	// Inline math
	regexp.MustCompile(`^\$[^$]*\$`),
}

// FindSkipSpan reports the byte length of a pass-through span anchored
// at the start of s, or 0 when no skip rule matches. No letter-level
// substitution, digraph merging or exception logic applies inside a
// returned span.
func FindSkipSpan(s string) int {
	for _, re := range skipPatterns {
		if loc := re.FindStringIndex(s); loc != nil {
			return loc[1]
		}
	}
	return 0
}
