package shield

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/chapani/latinga/dictionary"
	"github.com/chapani/latinga/symbols"
)

// Built-in token-level shields: matched once per call in buildMask, ahead of
// the main scan. None of these need any regexp2-only feature, so they use
// the standard library, whose Find*Index methods return byte offsets
// directly — regexp2's Index/Length are rune offsets, and using them as
// byte offsets into the mask corrupts multi-byte input.
var (
	reCodeBlock  = regexp.MustCompile("(?s)```.*?```|`[^`]+`")
	reEmail      = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	reRoman      = regexp.MustCompile(`(?i)\bM{0,4}(CM|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})\b`)
	reHTMLEntity = regexp.MustCompile(`&[a-zA-Z0-9#]+;`)
	reKeyValue   = regexp.MustCompile(`[a-zA-Z0-9_-]+\s*=\s*[a-zA-Z0-9_\\-]+`)
	reAttrScan   = regexp.MustCompile(`(?i)([a-z0-9\-]+)\s*=\s*(["'][^"']*["'])`)
	reURL        = regexp.MustCompile(`(?i)` + buildURLPattern())
)

// builtinTokenRegexes runs, in this order, against the whole input during
// mask construction. Order doesn't affect the result since every hit only
// ever sets mask bits true.
var builtinTokenRegexes = []*regexp.Regexp{
	reCodeBlock, reURL, reEmail, reRoman, reHTMLEntity, reKeyValue,
}

// buildURLPattern excludes every apostrophe variant from a bare URL's
// trailing character class, so a URL immediately followed by a possessive
// apostrophe doesn't swallow it.
func buildURLPattern() string {
	var apostrophes strings.Builder
	for r := range symbols.ApostropheVariants {
		apostrophes.WriteRune(r)
	}
	return `\bhttps?://[^\s<>"` + apostrophes.String() + `]+`
}

type byteRange struct{ start, end int }

// findAllRanges returns every non-overlapping match of re against s.
// regexp.FindAllStringIndex already reports byte offsets.
func findAllRanges(re *regexp.Regexp, s string) []byteRange {
	var out []byteRange
	for _, loc := range re.FindAllStringIndex(s, -1) {
		out = append(out, byteRange{loc[0], loc[1]})
	}
	return out
}

// shieldRegexRanges returns the ranges a user/default shield regex covers:
// capture group 1 if present ("narrows the shielded span" rule),
// else the whole match. Dictionary-supplied shield patterns are arbitrary
// caller-authored regex and stay on regexp2 for its richer syntax, so every
// offset it reports is converted from a rune index to a byte index before
// use.
func shieldRegexRanges(sr dictionary.ShieldRegex, s string) []byteRange {
	var out []byteRange
	idx := newRuneByteIndex(s)
	m, _ := sr.Pattern.FindStringMatch(s)
	for m != nil {
		out = append(out, groupOrWholeRange(sr, m, idx))
		m, _ = sr.Pattern.FindNextMatch(m)
	}
	return out
}

func groupOrWholeRange(sr dictionary.ShieldRegex, m *regexp2.Match, idx *runeByteIndex) byteRange {
	if sr.HasGroup1 {
		if g := m.GroupByNumber(1); g != nil && len(g.Captures) > 0 {
			c := g.Captures[0]
			return byteRange{idx.byteOffset(c.Index), idx.byteOffset(c.Index + c.Length)}
		}
	}
	return byteRange{idx.byteOffset(m.Index), idx.byteOffset(m.Index + m.Length)}
}

// runeByteIndex maps rune offsets into a fixed string to byte offsets,
// built once per string so repeated lookups (one match's start and end,
// across many matches) don't each re-scan from the beginning.
type runeByteIndex struct {
	// offsets[i] is the byte offset of the i-th rune; offsets[len(offsets)]
	// is implicitly len(s).
	offsets []int
	strLen  int
}

func newRuneByteIndex(s string) *runeByteIndex {
	offsets := make([]int, 0, len(s))
	for i := range s {
		offsets = append(offsets, i)
	}
	return &runeByteIndex{offsets: offsets, strLen: len(s)}
}

func (idx *runeByteIndex) byteOffset(runeIdx int) int {
	if runeIdx < 0 {
		return 0
	}
	if runeIdx >= len(idx.offsets) {
		return idx.strLen
	}
	return idx.offsets[runeIdx]
}
