package dictionary

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/chapani/latinga/internal/ahocorasick"
	"github.com/chapani/latinga/symbols"
)

// parseLines implements the uniform loader format: split
// on newlines, strip a leading BOM, drop everything from a bare '#' onward
// on each line, trim, skip empties.
func parseLines(content string) []string {
	content = strings.TrimPrefix(content, "﻿")
	rawLines := strings.Split(content, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// canonicalizeApostrophes rewrites every apostrophe variant in s to the
// canonical TUTUQ (U+02BC), per the substitution-value rule.
func canonicalizeApostrophes(s string) string {
	var b strings.Builder
	changed := false
	for _, r := range s {
		if symbols.ApostropheVariants[r] && r != symbols.TUTUQ {
			changed = true
			b.WriteRune(symbols.TUTUQ)
		} else {
			b.WriteRune(r)
		}
	}
	if !changed {
		return s
	}
	return b.String()
}

// stripApostrophes removes every apostrophe variant from s (used to derive
// healing trie keys from their canonical values).
func stripApostrophes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	changed := false
	for _, r := range s {
		if symbols.ApostropheVariants[r] {
			changed = true
			continue
		}
		b.WriteRune(r)
	}
	if !changed {
		return s
	}
	return b.String()
}

func firstASCIIByte(s string) (b byte, isASCII bool) {
	if s == "" {
		return 0, false
	}
	c := s[0]
	if c < 0x80 {
		return lowerASCII(c), true
	}
	return 0, false
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// LoadSubstitutions parses "key:value" lines. Values have every apostrophe
// variant canonicalised to TUTUQ; both sides are lowercased before the key
// is inserted into the substitutions trie.
func (d *Dictionary) LoadSubstitutions(content string) {
	for _, line := range parseLines(content) {
		i := strings.IndexByte(line, ':')
		if i < 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(line[:i]))
		value := strings.ToLower(canonicalizeApostrophes(strings.TrimSpace(line[i+1:])))
		if key == "" {
			continue
		}
		d.substitutions.Insert(key, value)
		d.substitutionsCount++
	}
	d.log.Debug().Int("count", d.substitutionsCount).Msg("dictionary: loaded substitutions")
}

// LoadHealing parses one desired-output value per line. The trie key is
// that value with every apostrophe variant stripped, lowercased; the stored
// value is the line as given (apostrophes intact). Joriy-only by
// convention (see config.New), but loadable in either mode.
func (d *Dictionary) LoadHealing(content string) {
	for _, line := range parseLines(content) {
		value := line
		key := strings.ToLower(stripApostrophes(value))
		if key == "" {
			continue
		}
		d.healing.Insert(key, value)
		d.healingCount++
		if b, ok := firstASCIIByte(key); ok {
			d.healingFirstChars[b] = true
		}
	}
	d.log.Debug().Int("count", d.healingCount).Msg("dictionary: loaded healing rules")
}

// LoadProperNouns parses one name per line, lowercase-keyed with the
// original-cased line as the stored value.
func (d *Dictionary) LoadProperNouns(content string) {
	for _, line := range parseLines(content) {
		key := strings.ToLower(line)
		if key == "" {
			continue
		}
		d.properNouns.Insert(key, line)
		d.properNounsCount++
		if b, ok := firstASCIIByte(key); ok {
			d.properNounFirstChars[b] = true
		}
	}
	d.log.Debug().Int("count", d.properNounsCount).Msg("dictionary: loaded proper nouns")
}

// LoadSuffixes parses one grammatical suffix per line into the lowercase
// suffix set.
func (d *Dictionary) LoadSuffixes(content string) {
	for _, line := range parseLines(content) {
		d.suffixes[strings.ToLower(line)] = true
	}
	d.log.Debug().Int("count", len(d.suffixes)).Msg("dictionary: loaded suffixes")
}

// regexMetachars is the fixed set of characters that mark a shield line as
// a regex rather than a literal: a line containing any of these is compiled
// as a regex, otherwise it's matched as a literal shield string.
const regexMetachars = `\[]()*?+^${}`

func looksLikeRegex(line string) bool {
	return strings.ContainsAny(line, regexMetachars)
}

// LoadShields parses shield lines: lines containing a regex metacharacter
// are compiled with regexp2 and appended to the regex list; everything else
// is a literal, and the Aho-Corasick automaton is rebuilt from the full
// literal set afterward. Returns the first regex compile error encountered;
// prior lines in the same call still take effect.
func (d *Dictionary) LoadShields(content string) error {
	literalsBefore := len(d.shieldLiterals)
	for _, line := range parseLines(content) {
		if looksLikeRegex(line) {
			re, err := regexp2.Compile(line, regexp2.None)
			if err != nil {
				if len(d.shieldLiterals) != literalsBefore {
					d.shieldAutomaton = ahocorasick.New(d.shieldLiterals)
				}
				return fmt.Errorf("dictionary: compile shield regex %q: %w", line, err)
			}
			d.shieldRegexes = append(d.shieldRegexes, ShieldRegex{
				Pattern:    re,
				HasGroup1:  re.GroupCount() > 1,
				sourceText: line,
			})
		} else {
			d.shieldLiterals = append(d.shieldLiterals, line)
		}
	}
	if len(d.shieldLiterals) != literalsBefore {
		d.shieldAutomaton = ahocorasick.New(d.shieldLiterals)
	}
	d.log.Debug().
		Int("literals", len(d.shieldLiterals)).
		Int("regexes", len(d.shieldRegexes)).
		Msg("dictionary: loaded shields")
	return nil
}
