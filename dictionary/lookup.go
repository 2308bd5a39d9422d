package dictionary

import "github.com/chapani/latinga/trie"

// LookupHealing consults the healing trie at the start of text, gated by
// the first-char bitmap for ASCII input (non-ASCII first runes always
// consult the trie directly ("bitmap filters are
// advisory only" note).
func (d *Dictionary) LookupHealing(text string) (value string, byteLen int, ok bool) {
	return lookupGated(d.healing, d.healingFirstChars, text)
}

// LookupSubstitution consults the substitutions trie at the start of text.
func (d *Dictionary) LookupSubstitution(text string) (value string, byteLen int, ok bool) {
	m, found := d.substitutions.FindLongestPrefix(text)
	if !found {
		return "", 0, false
	}
	return m.Value, m.ByteLen, true
}

// LookupProperNoun consults the proper-noun trie at the start of text,
// gated by the first-char bitmap for ASCII input.
func (d *Dictionary) LookupProperNoun(text string) (stored string, byteLen int, ok bool) {
	return lookupGated(d.properNouns, d.properNounFirstChars, text)
}

func lookupGated(t *trie.Trie, gate [256]bool, text string) (value string, byteLen int, ok bool) {
	if text == "" {
		return "", 0, false
	}
	if c := text[0]; c < 0x80 {
		if !gate[lowerASCII(c)] {
			return "", 0, false
		}
	}
	m, found := t.FindLongestPrefix(text)
	if !found {
		return "", 0, false
	}
	return m.Value, m.ByteLen, true
}

// IsProperNoun reports whether slice is exactly a known proper noun
// (case-insensitively, full-slice match), used to suppress a healing hit
// that exactly covers a known proper noun.
func (d *Dictionary) IsProperNoun(slice string) bool {
	_, n, ok := d.LookupProperNoun(slice)
	return ok && n == len(slice)
}

// IsSuffix reports whether lowerSuffix (already lowercased by the caller) is a known
// grammatical suffix.
func (d *Dictionary) IsSuffix(lowerSuffix string) bool {
	return d.suffixes[lowerSuffix]
}
