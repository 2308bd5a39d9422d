package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/chapani/latinga/config"
	"github.com/chapani/latinga/symbols"
)

// reSyllableSplit catches the is'hoq/as'hob/mus'haf family: a bare
// prefix-plus-suffix concatenation that would otherwise read as the wrong
// digraph across the syllable boundary.
var reSyllableSplit = regexp2.MustCompile(`^(is|as|mus)(hoq|hob|haf)$`, regexp2.IgnoreCase)

// flushWord writes out the accumulated word buffer and resets it to
// length zero for reuse, applying the mode-specific cleanup described in
// the word-buffering rules below.
func flushWord(w io.Writer, wordBuf *[]byte, cfg *config.Config) error {
	if len(*wordBuf) == 0 {
		return nil
	}
	defer func() { *wordBuf = (*wordBuf)[:0] }()

	word := string(*wordBuf)

	switch cfg.Mode {
	case config.Joriy:
		return flushJoriy(w, word)
	default:
		return flushKelgusi(w, word, cfg)
	}
}

func flushJoriy(w io.Writer, word string) error {
	if strings.ContainsRune(word, symbols.OKINA) || strings.ContainsRune(word, symbols.TUTUQ) {
		word = collapseDuplicateMarks(word)
	}

	if m, _ := reSyllableSplit.FindStringMatch(word); m != nil {
		g1 := m.GroupByNumber(1).Captures[0].String()
		g2 := m.GroupByNumber(2).Captures[0].String()
		if _, err := io.WriteString(w, g1+string(symbols.TUTUQ)+g2); err != nil {
			return fmt.Errorf("engine: write word: %w", err)
		}
		return nil
	}

	if _, err := io.WriteString(w, word); err != nil {
		return fmt.Errorf("engine: write word: %w", err)
	}
	return nil
}

// collapseDuplicateMarks rewrites OKINA+TUTUQ, TUTUQ+TUTUQ, and OKINA+OKINA
// runs down to a single mark, in that priority order, matching the
// original's sequential string-replace passes.
func collapseDuplicateMarks(word string) string {
	okina, tutuq := string(symbols.OKINA), string(symbols.TUTUQ)
	word = strings.ReplaceAll(word, okina+tutuq, okina)
	word = strings.ReplaceAll(word, tutuq+tutuq, tutuq)
	word = strings.ReplaceAll(word, okina+okina, okina)
	return word
}

func flushKelgusi(w io.Writer, word string, cfg *config.Config) error {
	if stem, suffix, ok := splitProperNounSuffix(word, cfg); ok {
		if _, err := fmt.Fprintf(w, "%s'%s", stem, suffix); err != nil {
			return fmt.Errorf("engine: write word: %w", err)
		}
		return nil
	}
	if _, err := io.WriteString(w, word); err != nil {
		return fmt.Errorf("engine: write word: %w", err)
	}
	return nil
}

// splitProperNounSuffix implements the Kelgusi flush-time attempt at
// separating a proper noun from a grammatical suffix that the per-character
// trie pre-check didn't already catch (because the proper noun's casing
// only became unambiguous once the whole word was assembled).
func splitProperNounSuffix(word string, cfg *config.Config) (stem, suffix string, ok bool) {
	if word == "" {
		return "", "", false
	}
	stored, stemLen, hit := cfg.Dict.LookupProperNoun(word)
	if !hit || stemLen >= len(word) {
		return "", "", false
	}
	stem = word[:stemLen]
	if !isValidCasing(stem, stored) {
		return "", "", false
	}
	suffix = word[stemLen:]
	if !cfg.Dict.IsSuffix(strings.ToLower(suffix)) {
		return "", "", false
	}
	return stem, suffix, true
}
