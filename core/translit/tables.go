package translit

// cyrToLat maps each letter of the Serbian Cyrillic alphabet to its
// lowercase Latin form. Three letters (љ, њ, џ) map to two-character
// digraphs.
var cyrToLat = map[rune]string{
	'а': "a",
	'б': "b",
	'в': "v",
	'г': "g",
	'д': "d",
	'ђ': "đ",
	'е': "e",
	'ж': "ž",
	'з': "z",
	'и': "i",
	'ј': "j",
	'к': "k",
	'л': "l",
	'љ': "lj",
	'м': "m",
	'н': "n",
	'њ': "nj",
	'о': "o",
	'п': "p",
	'р': "r",
	'с': "s",
	'т': "t",
	'ћ': "ć",
	'у': "u",
	'ф': "f",
	'х': "h",
	'ц': "c",
	'ч': "č",
	'џ': "dž",
	'ш': "š",
}

// latToCyr is the inverse of cyrToLat, keyed by the lowercase Latin form.
// Digraph keys coexist with the single-letter keys so that "n" followed
// by "j" stays reachable as two plain letters when no digraph applies.
var latToCyr = map[string]rune{
	"a": 'а',
	"b": 'б',
	"v": 'в',
	"g": 'г',
	"d": 'д',
	"đ": 'ђ',
	"e": 'е',
	"ž": 'ж',
	"z": 'з',
	"i": 'и',
	"j": 'ј',
	"k": 'к',
	"l": 'л',
	"m": 'м',
	"n": 'н',
	"o": 'о',
	"p": 'п',
	"r": 'р',
	"s": 'с',
	"t": 'т',
	"ć": 'ћ',
	"u": 'у',
	"f": 'ф',
	"h": 'х',
	"c": 'ц',
	"č": 'ч',
	"š": 'ш',

	// Two-letter digraphs
	"dž": 'џ',
	"lj": 'љ',
	"nj": 'њ',
}
