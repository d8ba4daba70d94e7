package translit

import (
	"strings"
	"testing"
)

func TestToLatin(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"pangram",
			"Чича Ђура жваће шљиве, његова ћерка Љиља једе џем",
			"Čiča Đura žvaće šljive, njegova ćerka Ljilja jede džem",
		},
		{
			"punctuation",
			"Чоканчићем ћу те, чоканчићем ћеш ме!!",
			"Čokančićem ću te, čokančićem ćeš me!!",
		},
		{"capitalized digraph", "Његош", "Njegoš"},
		{"lowercase digraphs", "шкафишкафњак", "škafiškafnjak"},
		{"title case word after digraph", "Џак Љубави", "Džak Ljubavi"},
		{"all caps word after digraph", "Џак ЉУБАВИ", "Džak LJUBAVI"},
		{"digits and spacing", "1 2 3 чоколада", "1 2 3 čokolada"},
		{"digraph at end of input", "шкрипи шкољ", "škripi školj"},
		{"empty", "", ""},
		{"emoji and ascii", "ура 🎉 ok", "ura 🎉 ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToLatin(tt.input)
			if got != tt.want {
				t.Errorf("ToLatin(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToCyrillic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"pangram",
			"Čiča Đura žvaće šljive, njegova ćerka Ljilja jede džem",
			"Чича Ђура жваће шљиве, његова ћерка Љиља једе џем",
		},
		{
			"punctuation",
			"Čokančićem ću te, čokančićem ćeš me!!",
			"Чоканчићем ћу те, чоканчићем ћеш ме!!",
		},
		{"capitalized digraph", "Njegoš", "Његош"},
		{"lowercase digraphs", "škafiškafnjak", "шкафишкафњак"},
		{"title case digraphs", "Džak Ljubavi", "Џак Љубави"},
		{"all caps digraphs", "Džak LJUBAVI", "Џак ЉУБАВИ"},
		{"digits and spacing", "1 2 3 čokolada", "1 2 3 чоколада"},
		{"trailing single letter", "bicikl j", "бицикл ј"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToCyrillic(tt.input)
			if got != tt.want {
				t.Errorf("ToCyrillic(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToCyrillicExceptions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"tanjug stays n-j",
			"Kako Tanjug javlja, ja te volim!",
			"Како Танјуг јавља, ја те волим!",
		},
		{
			"odžubori stays d-ž",
			"Odžubori ovaj potočić!",
			"Оджубори овај поточић!",
		},
		{
			"injekcija stays n-j",
			"intravenozna injekcija",
			"интравенозна инјекција",
		},
		{
			"nadživeti stays d-ž",
			"nadživeo je sve",
			"надживео је све",
		},
		{
			"regular digraph still merges",
			"ljubav nije izuzetak",
			"љубав није изузетак",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToCyrillic(tt.input)
			if got != tt.want {
				t.Errorf("ToCyrillic(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSkipSpans(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		conv  func(string) string
	}{
		{
			"url to cyrillic",
			"Posetite sajt https://igordejanovic.net/ za više informacija.",
			"Посетите сајт https://igordejanovic.net/ за више информација.",
			ToCyrillic,
		},
		{
			"url to latin",
			"Посетите сајт https://igordejanovic.net/ за више информација.",
			"Posetite sajt https://igordejanovic.net/ za više informacija.",
			ToLatin,
		},
		{
			"email and hashtags to cyrillic",
			"Možete nas kontaktirati na neko@negde.net #supercool #extra",
			"Можете нас контактирати на neko@negde.net #supercool #extra",
			ToCyrillic,
		},
		{
			"email and hashtags to latin",
			"Можете нас контактирати на neko@negde.net #supercool #extra",
			"Možete nas kontaktirati na neko@negde.net #supercool #extra",
			ToLatin,
		},
		{
			"latex environment",
			"\\begin{itemize}\n\\item Malo inlajn matematike - $E=mc^2$.\n\\end{itemize}",
			"\\begin{itemize}\n\\item Мало инлајн математике - $E=mc^2$.\n\\end{itemize}",
			ToCyrillic,
		},
		{
			"cursor offset after non-ascii commands",
			"Proba \\ljuljaška kalkulacije \\šibica ofseta код прескакања",
			"Проба \\ljuljaška калкулације \\šibica офсета код прескакања",
			ToCyrillic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.conv(tt.input)
			if got != tt.want {
				t.Errorf("conversion of %q = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSkipSpanCopiedExactlyOnce(t *testing.T) {
	const url = "https://igordejanovic.net/"
	input := "Sajt " + url + " radi."

	got := ToCyrillic(input)
	if n := strings.Count(got, url); n != 1 {
		t.Errorf("ToCyrillic(%q) = %q, URL occurs %d times, want 1", input, got, n)
	}
}

func TestRoundTrip(t *testing.T) {
	cyrillic := []string{
		"Чича Ђура жваће шљиве, његова ћерка Љиља једе џем",
		"Џак ЉУБАВИ",
		"1 2 3 чоколада",
	}
	for _, s := range cyrillic {
		if got := ToCyrillic(ToLatin(s)); got != s {
			t.Errorf("ToCyrillic(ToLatin(%q)) = %q, want input back", s, got)
		}
	}

	latin := []string{
		"Čiča Đura žvaće šljive, njegova ćerka Ljilja jede džem",
		"Džak LJUBAVI",
		"1 2 3 čokolada",
	}
	for _, s := range latin {
		if got := ToLatin(ToCyrillic(s)); got != s {
			t.Errorf("ToLatin(ToCyrillic(%q)) = %q, want input back", s, got)
		}
	}
}

func TestContainsCyrillic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"pure cyrillic", "чоколада", true},
		{"mixed", "abc џ def", true},
		{"pure latin", "čokolada", false},
		{"digits only", "123 !?", false},
		{"uppercase cyrillic", "ЂАК", true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsCyrillic(tt.input); got != tt.want {
				t.Errorf("ContainsCyrillic(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
