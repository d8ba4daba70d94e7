package translit

import "testing"

func TestFindSkipSpan(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"url with scheme", "https://igordejanovic.net/ ostalo", len("https://igordejanovic.net/")},
		{"url without scheme", "igordejanovic.net/stranica i tekst", len("igordejanovic.net/stranica")},
		{"email", "neko@negde.net ostalo", len("neko@negde.net")},
		{"hashtag ascii", "#supercool i dalje", len("#supercool")},
		{"hashtag non-ascii", "#ћирилица!", len("#ћирилица")},
		{"latex environment open", "\\begin{itemize} x", len("\\begin{itemize}")},
		{"latex environment close", "\\end{itemize} x", len("\\end{itemize}")},
		{"latex command", "\\item tekst", len("\\item")},
		{"latex command non-ascii", "\\šibica ofseta", len("\\šibica")},
		{"inline math", "$E=mc^2$ ostalo", len("$E=mc^2$")},
		{"plain word", "obična reč", 0},
		{"cyrillic word", "Танјуг", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindSkipSpan(tt.input); got != tt.want {
				t.Errorf("FindSkipSpan(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindSkipSpanAnchored(t *testing.T) {
	// A rule may only match at the start of the remaining text, never
	// later inside it.
	if got := FindSkipSpan("tekst pa #hashtag"); got != 0 {
		t.Errorf("FindSkipSpan matched mid-text span, got length %d, want 0", got)
	}
}
