// Package symbols holds the fixed, mode-independent constants shared by the
// dictionary, engine, and validator: canonical apostrophe code points, the
// Cyrillic vowel set, and the 1-to-1 Cyrillic→Latin fallback table.
//
// None of these tables are ever mutated at runtime; they back the
// per-character rule tables in package engine.
package symbols

// OKINA is the modifier-letter turned comma (U+02BB), used after o/g.
const OKINA = 'ʻ'

// TUTUQ is the modifier-letter apostrophe (U+02BC), the glottal-stop /
// syllable-separator mark used everywhere else.
const TUTUQ = 'ʼ'

// Ghost is the combining turned comma above (U+0312), a healing target:
// some input encodes OKINA as this combining mark instead.
const Ghost = '̒'

// ApostropheVariants lists every rune the engine treats as "some kind of
// apostrophe" before it decides, from context, which of OKINA/TUTUQ/elision
// applies. Matches the canonical apostrophe-variant set {', `, ‘, ’, ´, ʻ, ʼ}.
var ApostropheVariants = map[rune]bool{
	'\'':   true, // straight apostrophe U+0027
	'`':    true, // backtick U+0060
	'‘': true, // left single quote
	'’': true, // right single quote
	'´': true, // acute accent U+00B4
	OKINA:  true,
	TUTUQ:  true,
}

// CombiningMarks lists the combining diacritics that, following o/g, heal to
// OKINA and otherwise elide.
var CombiningMarks = map[rune]bool{
	Ghost:   true, // U+0312 combining turned comma above
	'̀': true, // combining grave accent
	'́': true, // combining acute accent
	'̆': true, // combining breve
}

// CyrillicVowels is the fixed Cyrillic vowel set used for vowel-sensitive rules.
const CyrillicVowels = "аеёиоуэюяўыАЕЁИОУЭЮЯЎЫ"

// IsCyrillicVowel reports whether r is a member of CyrillicVowels.
func IsCyrillicVowel(r rune) bool {
	for _, v := range CyrillicVowels {
		if v == r {
			return true
		}
	}
	return false
}

// hardSignFollowers is the consonant set that, immediately before the hard
// sign Ъ/ъ, yields "y" when followed by е/ю/я.
const hardSignFollowers = "бвгджзйклмнпрстфхцчшщқҳ"

// IsHardSignFollower reports whether lowerConsonant (already lowercased) is
// one of the consonants that precede a "separating" hard sign.
func IsHardSignFollower(lowerConsonant rune) bool {
	for _, c := range hardSignFollowers {
		if c == lowerConsonant {
			return true
		}
	}
	return false
}

// TransliterableAttributes lists the HTML attributes whose value text the
// shielding tokenizer still hands to the engine when otherwise shielding a
// tag ("selective per-attribute unshielding").
var TransliterableAttributes = map[string]bool{
	"content":     true,
	"title":       true,
	"alt":         true,
	"placeholder": true,
	"label":       true,
}

// FullyProtectedTags lists HTML tags whose entire content, up to the
// matching closing tag, is shielded verbatim.
var FullyProtectedTags = map[string]bool{
	"script": true,
	"style":  true,
	"code":   true,
	"pre":    true,
}

// LatexStructuralCommands lists LaTeX commands whose balanced-brace/bracket
// argument list is shielded as a unit (labels, references, includes).
var LatexStructuralCommands = map[string]bool{
	"label": true, "cite": true, "ref": true, "include": true, "input": true,
	"includegraphics": true, "usepackage": true, "documentclass": true,
	"begin": true, "end": true,
}

// LatexVerbatimEnvironments lists \begin{...} environment names whose body
// is shielded verbatim through the matching \end{...}.
var LatexVerbatimEnvironments = map[string]bool{
	"verbatim": true, "lstlisting": true, "code": true, "minted": true,
}

// FallbackLatin is the fixed 1-to-1 Cyrillic→Latin table, rule 15 of
// shared by both modes. Letters handled by earlier,
// mode-specific rules (Ш Ч Ғ Ў Е Ц Ъ Ь Ё Ю Я Х) are intentionally absent —
// see engine/cyrillic.go for those.
var FallbackLatin = map[rune]rune{
	'А': 'A', 'а': 'a',
	'Б': 'B', 'б': 'b',
	'В': 'V', 'в': 'v',
	'Г': 'G', 'г': 'g',
	'Д': 'D', 'д': 'd',
	'Ж': 'J', 'ж': 'j',
	'З': 'Z', 'з': 'z',
	'И': 'I', 'и': 'i',
	'Й': 'Y', 'й': 'y',
	'К': 'K', 'к': 'k',
	'Л': 'L', 'л': 'l',
	'М': 'M', 'м': 'm',
	'Н': 'N', 'н': 'n',
	'О': 'O', 'о': 'o',
	'П': 'P', 'п': 'p',
	'Р': 'R', 'р': 'r',
	'С': 'S', 'с': 's',
	'Т': 'T', 'т': 't',
	'У': 'U', 'у': 'u',
	'Ф': 'F', 'ф': 'f',
	'Қ': 'Q', 'қ': 'q',
	'Ҳ': 'H', 'ҳ': 'h',
	'Ы': 'I', 'ы': 'i',
	'Э': 'E', 'э': 'e',
}
