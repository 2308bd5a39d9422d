// Package validator implements a non-transforming diagnostic scan: it
// shares the shielding tokenizer with package engine but emits positioned
// findings instead of rewritten text.
//
// Summary.Score starts at 100 and deducts a fixed amount per detected
// error, floored at 0.
package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/chapani/latinga/config"
	"github.com/chapani/latinga/messages"
	"github.com/chapani/latinga/shield"
	"github.com/chapani/latinga/symbols"
)

// Error is one positioned finding. Line and Column are 1-based and count
// code points, not bytes. Word is the containing word, extended forward to
// its natural boundary even when the triggering position is mid-word.
type Error struct {
	Line, Column int
	Word, Message string
}

// Summary is the result of a Validate call.
type Summary struct {
	// Errors holds up to the caller's limit, in input order.
	Errors []Error
	// Total counts every detected error, including those past the limit.
	Total int
}

// deductionPerError is the fixed point deduction per finding; this
// validator has no severity tiers, so every finding deducts the same
// amount.
const deductionPerError = 10

// Score returns a quality score from 100 (no findings) down to 0, deducting
// deductionPerError for every error Total counts, not just the ones kept in
// Errors.
func (s Summary) Score() int {
	score := 100 - deductionPerError*s.Total
	if score < 0 {
		return 0
	}
	return score
}

// reSyllableSplit matches the same is/as/mus + hoq/hob/haf family the
// engine's flush step repairs automatically; here its presence (without an
// apostrophe variant already in the word) is reported instead of fixed.
var reSyllableSplit = regexp2.MustCompile(`^(is|as|mus)(hoq|hob|haf)$`, regexp2.IgnoreCase)

// kelgusiReformTrigger pairs a legacy digraph/apostrophe-vowel spelling
// with the single Kelgusi letter it should become. Order matters: the
// first trigger in this list found anywhere in a word wins, even if a
// later trigger in the list occurs earlier in the word's text.
type kelgusiReformTrigger struct {
	legacy, reform string
}

var kelgusiReformTriggers = []kelgusiReformTrigger{
	{"g'", "ğ"}, {"gʻ", "ğ"}, {"g`", "ğ"}, {"g‘", "ğ"}, {"g’", "ğ"},
	{"o'", "ö"}, {"oʻ", "ö"}, {"o`", "ö"}, {"o‘", "ö"}, {"o’", "ö"},
	{"sh", "ş"}, {"ch", "ç"},
}

// Validate scans input for legacy-orthography artefacts under cfg's mode,
// keeping up to limit errors in detail while Total counts every one found.
func Validate(input string, limit int, cfg *config.Config) Summary {
	var errors []Error
	total := 0
	line, col := 1, 1

	tok := shield.New(input, cfg.Dict)
	for {
		chunk, ok := tok.Next()
		if !ok {
			break
		}
		switch chunk.Kind {
		case shield.Shielded:
			line, col = advancePosition(chunk.Text, line, col)
		case shield.Safe:
			processSafeChunk(chunk.Text, cfg, &line, &col, &errors, &total, limit)
		}
	}

	return Summary{Errors: errors, Total: total}
}

// advancePosition walks a Shielded chunk's bytes to keep line/column
// counters in sync without re-decoding every rune: a leading UTF-8 byte
// ((b&0xC0) != 0x80) counts as one code point for column purposes.
func advancePosition(s string, line, col int) (int, int) {
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == '\n':
			line++
			col = 1
		case b&0xC0 != 0x80:
			col++
		}
	}
	return line, col
}

func processSafeChunk(text string, cfg *config.Config, linep, colp *int, errors *[]Error, total *int, limit int) {
	var wordStartIdx, wordStartCol int
	haveWordStart := false
	var prevChar rune
	havePrev := false

	for byteIdx, c := range text {
		if c == '\n' {
			if haveWordStart {
				word := text[wordStartIdx:byteIdx]
				checkWord(word, *linep, wordStartCol, cfg, errors, total, limit)
				haveWordStart = false
			}
			*linep++
			*colp = 1
			prevChar, havePrev = c, true
			continue
		}

		isWordChar := unicode.IsLetter(c) || symbols.ApostropheVariants[c]

		if isWordChar {
			if !haveWordStart {
				wordStartIdx, wordStartCol = byteIdx, *colp
				haveWordStart = true
			}
			if cfg.Mode == config.Joriy && symbols.ApostropheVariants[c] {
				if msg, isErr := checkApostropheInline(c, prevChar, havePrev, cfg.Mode); isErr {
					*total++
					if len(*errors) < limit {
						wordEnd := findWordEnd(text, byteIdx)
						fullWord := text[wordStartIdx:wordEnd]
						*errors = append(*errors, Error{
							Line: *linep, Column: *colp, Word: fullWord, Message: msg,
						})
					}
				}
			}
		} else if haveWordStart {
			word := text[wordStartIdx:byteIdx]
			checkWord(word, *linep, wordStartCol, cfg, errors, total, limit)
			haveWordStart = false
		}

		*colp++
		prevChar, havePrev = c, true
	}

	if haveWordStart {
		word := text[wordStartIdx:]
		checkWord(word, *linep, wordStartCol, cfg, errors, total, limit)
	}
}

// findWordEnd returns the byte offset of the first non-word-character rune
// at or after start (start itself is always a word character: the
// apostrophe variant that triggered the inline check).
func findWordEnd(text string, start int) int {
	for i := start; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsLetter(r) && !symbols.ApostropheVariants[r] {
			return i
		}
		i += size
	}
	return len(text)
}

// checkApostropheInline implements the Joriy-only inline check: an
// apostrophe-variant that isn't already OKINA or TUTUQ is flagged, with the
// message naming OKINA when it follows o/g (ASCII-cased) and TUTUQ
// otherwise. Deliberately recognizes only the straight apostrophe,
// backtick, and the two curly single quotes — not the acute accent, even
// though the latter is a member of the canonical apostrophe-variant set
// used for word-boundary detection.
func checkApostropheInline(c, prevChar rune, havePrev bool, mode config.Mode) (string, bool) {
	if c == symbols.OKINA || c == symbols.TUTUQ {
		return "", false
	}
	switch c {
	case '\'', '`', '‘', '’':
		if havePrev {
			pl := unicode.ToLower(prevChar)
			if pl == 'o' || pl == 'g' {
				return messages.For(mode, messages.OldSpellingChar, string(symbols.OKINA)), true
			}
		}
		return messages.For(mode, messages.OldSpellingChar, string(symbols.TUTUQ)), true
	}
	return "", false
}

func checkWord(word string, line, col int, cfg *config.Config, errors *[]Error, total *int, limit int) {
	if word == "" {
		return
	}
	countingOnly := len(*errors) >= limit

	if cfg.Mode == config.Joriy {
		checkJoriyWord(word, line, col, errors, total, countingOnly, limit)
		return
	}
	checkKelgusiWord(word, line, col, errors, total, countingOnly, limit)
}

func checkJoriyWord(word string, line, col int, errors *[]Error, total *int, countingOnly bool, limit int) {
	if !strings.ContainsAny(word, "sS") || !strings.ContainsAny(word, "hH") {
		return
	}
	lower := strings.ToLower(word)
	m, _ := reSyllableSplit.FindStringMatch(lower)
	if m == nil || containsApostropheVariant(word) {
		return
	}

	*total++
	if countingOnly {
		return
	}
	// reSyllableSplit is anchored end to end, so a match always covers the
	// whole word; the error always starts at the word's own column.
	*errors = append(*errors, Error{
		Line: line, Column: col, Word: word,
		Message: messages.For(config.Joriy, messages.SyllableSeparator),
	})
}

func checkKelgusiWord(word string, line, col int, errors *[]Error, total *int, countingOnly bool, limit int) {
	for _, tr := range kelgusiReformTriggers {
		idx, found := findCaseInsensitiveASCII(word, tr.legacy)
		if !found {
			continue
		}
		*total++
		if countingOnly {
			return
		}
		rep := tr.reform
		if startsUpper(word) {
			rep = strings.ToUpper(rep)
		} else {
			rep = strings.ToLower(rep)
		}
		charOffset := utf8.RuneCountInString(word[:idx])
		*errors = append(*errors, Error{
			Line: line, Column: col + charOffset, Word: word,
			Message: messages.For(config.Kelgusi, messages.OldSpellingChar, rep),
		})
		return
	}
}

func containsApostropheVariant(word string) bool {
	for _, r := range word {
		if symbols.ApostropheVariants[r] {
			return true
		}
	}
	return false
}

func startsUpper(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

// findCaseInsensitiveASCII returns the byte offset of needle's first
// occurrence in haystack, starting only at rune boundaries, comparing
// byte-for-byte with ASCII letters case-folded (so only the ASCII-letter
// bytes of multi-byte needles like "gʻ" are folded).
func findCaseInsensitiveASCII(haystack, needle string) (int, bool) {
	nb := len(needle)
	for i := range haystack {
		if i+nb > len(haystack) {
			break
		}
		if asciiEqualFoldBytes(haystack[i:i+nb], needle) {
			return i, true
		}
	}
	return 0, false
}

func asciiEqualFoldBytes(a, b string) bool {
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
