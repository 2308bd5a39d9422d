// Kelgusi-only Latin-to-Latin digraph collapsing: sh/ch/o+apostrophe/
// g+apostrophe, each consuming two source characters. Split out from
// engine.go as its own file, one concern per file.
package engine

import (
	"unicode"

	"github.com/chapani/latinga/symbols"
)

// handleLatinToLatin implements rule 13. It only runs when the mode is
// already known to be Kelgusi and c is one of s/c/o/g (checked by the
// caller's dispatch).
func (p *processor) handleLatinToLatin(idx int, c rune, charLen int, prevChar rune, havePrev bool) (string, int) {
	next, ok := p.peekChar(idx + charLen)
	if !ok {
		return string(c), charLen
	}

	nextLen := runeByteLen(next)
	currentLower := unicode.ToLower(c)
	nextLower := unicode.ToLower(next)
	isUpper := unicode.IsUpper(c)
	caps := p.isCapsContext(idx, charLen, prevChar, havePrev)

	switch {
	case currentLower == 's' && nextLower == 'h':
		return p.formatComplex("ş", isUpper, caps), charLen + nextLen
	case currentLower == 'c' && nextLower == 'h':
		return p.formatComplex("ç", isUpper, caps), charLen + nextLen
	case currentLower == 'o' && symbols.ApostropheVariants[next]:
		return p.formatComplex("ö", isUpper, caps), charLen + nextLen
	case currentLower == 'g' && symbols.ApostropheVariants[next]:
		return p.formatComplex("ğ", isUpper, caps), charLen + nextLen
	default:
		return string(c), charLen
	}
}

func runeByteLen(r rune) int {
	return len(string(r))
}
