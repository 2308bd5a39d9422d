package dictionary

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chapani/latinga/internal/caseutil"
	"github.com/chapani/latinga/symbols"
)

// Heal runs the standalone healing pass: first a
// global ghost-mark replacement, then a left-to-right scan that rewrites
// apostrophe-less stems to their canonical healed form at word boundaries.
// It is zero-copy when nothing needs fixing.
func (d *Dictionary) Heal(text string) string {
	text = replaceGhostMark(text)

	var b strings.Builder
	allocated := false
	prevAlpha := false // true if the previously *scanned source* rune was alphabetic

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		atBoundary := !prevAlpha

		if atBoundary && unicode.IsLetter(r) {
			if value, byteLen, ok := d.LookupHealing(text[i:]); ok {
				slice := text[i : i+byteLen]
				if !d.IsProperNoun(slice) {
					if !allocated {
						b.Grow(len(text))
						b.WriteString(text[:i])
						allocated = true
					}
					b.WriteString(caseutil.ApplyCase(slice, value))
					i += byteLen
					prevAlpha = true
					continue
				}
			}
		}

		if allocated {
			b.WriteRune(r)
		}
		prevAlpha = unicode.IsLetter(r)
		i += size
	}

	if !allocated {
		return text
	}
	return b.String()
}

// replaceGhostMark replaces every occurrence of the combining turned comma
// (U+0312) with OKINA. Zero-copy when the mark is absent.
func replaceGhostMark(text string) string {
	if !strings.ContainsRune(text, symbols.Ghost) {
		return text
	}
	return strings.ReplaceAll(text, string(symbols.Ghost), string(symbols.OKINA))
}
