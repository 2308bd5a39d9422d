package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chapani/latinga/config"
)

// findTrieMatch implements rule 1: at a word boundary, try the healing
// trie (unless the matched slice is itself a known proper noun), then the
// substitutions trie, then a proper-noun-plus-suffix match. Returns the
// number of source bytes matched and case-preserving-neutral replacement
// text (apply_case, done by the caller, transfers the source's casing).
func (p *processor) findTrieMatch(byteIdx int) (matchLen int, replacement string, ok bool) {
	rest := p.text[byteIdx:]
	dict := p.cfg.Dict

	if value, n, hit := dict.LookupHealing(rest); hit {
		if !dict.IsProperNoun(rest[:n]) {
			return n, value, true
		}
	}

	if value, n, hit := dict.LookupSubstitution(rest); hit {
		return n, value, true
	}

	if stored, stemLen, hit := dict.LookupProperNoun(rest); hit {
		inputStem := rest[:stemLen]
		if !isValidCasing(inputStem, stored) {
			return 0, "", false
		}

		suffixLen := alphabeticRunLen(rest[stemLen:])
		rawSuffix := rest[stemLen : stemLen+suffixLen]

		suffixValid := rawSuffix == "" || dict.IsSuffix(strings.ToLower(rawSuffix))
		if !suffixValid {
			return 0, "", false
		}

		var b strings.Builder
		b.WriteString(inputStem)
		if rawSuffix != "" {
			if p.cfg.Mode == config.Kelgusi {
				b.WriteByte('\'')
			}
			b.WriteString(rawSuffix)
		}
		return stemLen + suffixLen, b.String(), true
	}

	return 0, "", false
}

// alphabeticRunLen returns the byte length of the longest prefix of s
// consisting entirely of letters.
func alphabeticRunLen(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			break
		}
		n += utf8.RuneLen(r)
	}
	return n
}

// isValidCasing implements 4.4a: inputStem (from the source) is a valid
// rendering of stored (the dictionary's canonical-case proper noun) if
// they're equal, if stored starts uppercase and inputStem is fully
// uppercase, if stored starts lowercase and inputStem case-folds to it
// fully uppercased, or if stored starts lowercase and inputStem is its
// title-case form.
func isValidCasing(inputStem, stored string) bool {
	if inputStem == stored {
		return true
	}
	firstStored, _ := utf8.DecodeRuneInString(stored)
	inputAllCaps := isAllNonLower(inputStem)

	if unicode.IsUpper(firstStored) {
		return inputAllCaps
	}

	if inputAllCaps && strings.EqualFold(inputStem, stored) {
		return true
	}

	firstInput, inputFirstSize := utf8.DecodeRuneInString(inputStem)
	_, storedFirstSize := utf8.DecodeRuneInString(stored)
	if unicode.IsUpper(firstInput) && inputStem[inputFirstSize:] == stored[storedFirstSize:] {
		return true
	}
	return false
}

// isAllNonLower reports whether s contains no lowercase letters (matching
// the original's "all(|c| !c.is_lowercase())", which treats non-letters as
// neutral).
func isAllNonLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
	}
	return true
}
