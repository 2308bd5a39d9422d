// Package dictionary owns the tries, shield sets, and suffix set that back
// both the transliteration engine and the validator.
//
// A Dictionary is built once via New plus a sequence of Load* calls, then
// treated as read-only: concurrent Translate/Validate calls against the
// same Dictionary are safe, but a Load* call must never overlap with one,
// matching the dictionary's loaded shield set.
package dictionary

import (
	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"

	"github.com/chapani/latinga/internal/ahocorasick"
	"github.com/chapani/latinga/trie"
)

// ShieldRegex pairs a compiled pattern with whether it has a narrowing
// capture group ("capture group 1, if present, narrows the
// shielded span").
type ShieldRegex struct {
	Pattern    *regexp2.Regexp
	HasGroup1  bool
	sourceText string // original source, for error messages and Stats
}

// Dictionary holds every piece of loadable data the engine and validator
// consult: substitution/healing/proper-noun tries, the suffix set, and the
// shield literal/regex sets (plus the Aho-Corasick automaton built over the
// literals).
type Dictionary struct {
	substitutions *trie.Trie
	healing       *trie.Trie
	properNouns   *trie.Trie
	suffixes      map[string]bool

	shieldLiterals []string
	shieldAutomaton *ahocorasick.Matcher
	shieldRegexes   []ShieldRegex

	healingFirstChars    [256]bool
	properNounFirstChars [256]bool

	substitutionsCount int
	healingCount       int
	properNounsCount   int

	log zerolog.Logger
}

// New returns an empty Dictionary: no substitutions, no healing entries, no
// proper nouns, no suffixes, no shields. Callers build it up with the Load*
// methods, typically via config.New which also seeds the embedded default
// assets appropriate to the chosen Mode.
func New() *Dictionary {
	return &Dictionary{
		substitutions: trie.New(),
		healing:       trie.New(),
		properNouns:   trie.New(),
		suffixes:      make(map[string]bool),
		log:           zerolog.Nop(),
	}
}

// SetLogger installs a logger used for Debug-level load diagnostics.
func (d *Dictionary) SetLogger(log zerolog.Logger) {
	d.log = log
}

// Stats reports entry counts for observability (logged by config.New at
// Debug level).
type Stats struct {
	Substitutions int
	Healing       int
	ProperNouns   int
	Suffixes      int
	ShieldLiterals int
	ShieldRegexes  int
}

// Stats returns current entry counts. The trie package doesn't track a
// count directly, so this is maintained alongside the loaders below via
// dedicated counters.
func (d *Dictionary) Stats() Stats {
	return Stats{
		Substitutions:  d.substitutionsCount,
		Healing:        d.healingCount,
		ProperNouns:    d.properNounsCount,
		Suffixes:       len(d.suffixes),
		ShieldLiterals: len(d.shieldLiterals),
		ShieldRegexes:  len(d.shieldRegexes),
	}
}
