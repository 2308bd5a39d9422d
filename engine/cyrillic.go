// Cyrillic-origin per-character rules:
// Ye/Ts context sensitivity, the hard and soft signs, the iotated vowels
// Ё/Ю/Я, and the four letters with a dedicated Kelgusi single-letter form
// (Ғ, Ў, Ш/Щ, Ч). Split out from engine.go as its own file, one concern per file.
package engine

import (
	"unicode"

	"github.com/chapani/latinga/config"
	"github.com/chapani/latinga/symbols"
)

// handleYe implements rule 4.
func (p *processor) handleYe(c rune, idx, charLen int, prevChar rune, havePrev bool) string {
	isUpper := unicode.IsUpper(c)
	prevWasHard := havePrev && (prevChar == 'Ъ' || prevChar == 'ъ')

	switch {
	case prevWasHard:
		return yeOrE(isUpper)
	case !havePrev || !unicode.IsLetter(prevChar) || p.isVowel(prevChar, havePrev):
		return p.formatComplex("Ye", isUpper, p.isCapsContext(idx, charLen, prevChar, havePrev))
	default:
		return yeOrE(isUpper)
	}
}

func yeOrE(isUpper bool) string {
	if isUpper {
		return "E"
	}
	return "e"
}

// handleTs implements rule 5.
func (p *processor) handleTs(c rune, idx, charLen int, prevChar rune, havePrev bool) string {
	isUpper := unicode.IsUpper(c)
	if p.isVowel(prevChar, havePrev) {
		return p.formatComplex("Ts", isUpper, p.isCapsContext(idx, charLen, prevChar, havePrev))
	}
	if isUpper {
		return "S"
	}
	return "s"
}

// handleHardSign implements rule 6. It reads prevChar from the source
// (not from any emitted replacement), resolving the ambiguous case
// about which "prev" rule 6 consults.
func (p *processor) handleHardSign(idx, charLen int, prevChar rune, havePrev bool) (string, int) {
	next, haveNext := p.peekChar(idx + charLen)
	nextLower := unicode.ToLower(next)
	prevLower := unicode.ToLower(prevChar)

	if haveNext && (nextLower == 'е' || nextLower == 'ю' || nextLower == 'я') &&
		havePrev && symbols.IsHardSignFollower(prevLower) {
		return "y", charLen
	}
	if haveNext && nextLower == 'е' {
		return "", charLen
	}
	if p.cfg.Mode == config.Kelgusi {
		return "", charLen
	}
	return string(symbols.TUTUQ), charLen
}

// handleGhayn implements rule 9.
func (p *processor) handleGhayn(c rune, idx, charLen int, prevChar rune, havePrev, isKelgusi bool) string {
	isUpper := unicode.IsUpper(c)
	caps := p.isCapsContext(idx, charLen, prevChar, havePrev)
	if isKelgusi {
		return p.formatComplex("ğ", isUpper, caps)
	}
	return p.formatComplex("g"+string(symbols.OKINA), isUpper, caps)
}

// handleWav implements rule 10.
func (p *processor) handleWav(c rune, idx, charLen int, prevChar rune, havePrev, isKelgusi bool) string {
	isUpper := unicode.IsUpper(c)
	caps := p.isCapsContext(idx, charLen, prevChar, havePrev)
	if isKelgusi {
		return p.formatComplex("ö", isUpper, caps)
	}
	return p.formatComplex("o"+string(symbols.OKINA), isUpper, caps)
}
