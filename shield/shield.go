// Package shield implements the shielding tokenizer: a two-phase scanner
// that protects LaTeX, HTML, Markdown code spans, URLs, emails, Roman
// numerals, HTML entities, key=value fragments, and caller-configured
// shield literals/regexes from transliteration, while still yielding the
// surrounding text as ordinary, rewritable chunks.
//
// Phase one builds a byte mask over the whole input by running every
// built-in and dictionary-supplied regex/literal matcher once. Phase two
// is a single left-to-right scan that, at each position, either consumes a
// masked run verbatim or hands off to one of a handful of structural
// scanners (the {] ... [} universal shield, LaTeX, HTML) before falling
// back to consuming ordinary bytes. Exposed as a pull-based Tokenizer with
// a cursor-driven, byte-index scanning style.
package shield

import (
	"fmt"
	"strings"

	"github.com/chapani/latinga/dictionary"
)

// Kind classifies a Chunk.
type Kind int

const (
	// Safe chunks are ordinary text the engine should transliterate.
	Safe Kind = iota
	// Shielded chunks must pass through untouched.
	Shielded
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Safe:
		return "Safe"
	case Shielded:
		return "Shielded"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Chunk is one piece of the pull-based tokenizer's output: a contiguous
// byte range of the input and whether it should be transliterated.
type Chunk struct {
	Kind Kind
	Text string
}

// Tokenizer scans a fixed input string into a sequence of Chunks. It is
// not safe for concurrent use, but a single input is cheap to re-tokenize:
// construct a fresh Tokenizer per call.
type Tokenizer struct {
	input   string
	cursor  int
	mask    []bool
	pending []Chunk // buffered chunks from a just-split HTML tag
}

// New builds a Tokenizer over input, running the pre-mask pass against
// dict's shield literals and regexes (dict may be nil, in which case only
// the built-in token regexes apply).
func New(input string, dict *dictionary.Dictionary) *Tokenizer {
	return &Tokenizer{
		input: input,
		mask:  buildMask(input, dict),
	}
}

// Next returns the next Chunk and true, or a zero Chunk and false once the
// input is exhausted.
func (t *Tokenizer) Next() (Chunk, bool) {
	if len(t.pending) > 0 {
		c := t.pending[0]
		t.pending = t.pending[1:]
		return c, true
	}
	return t.scanNext()
}

// All drains the Tokenizer into a slice, for callers that don't need
// pull-based iteration.
func (t *Tokenizer) All() []Chunk {
	var out []Chunk
	for {
		c, ok := t.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

func (t *Tokenizer) scanNext() (Chunk, bool) {
	n := len(t.input)
	if t.cursor >= n {
		return Chunk{}, false
	}
	start := t.cursor

	if t.mask[t.cursor] {
		for t.cursor < n && t.mask[t.cursor] {
			t.cursor++
		}
		return Chunk{Shielded, t.input[start:t.cursor]}, true
	}

	c := t.input[t.cursor]

	if c == '{' && t.peek(1) == ']' {
		if end, ok := t.scanUniversalShield(); ok {
			innerStart := start + 2
			innerEnd := end - 2
			if innerEnd < innerStart {
				innerEnd = innerStart
			}
			t.cursor = end
			if innerStart >= innerEnd {
				return t.scanNext()
			}
			return Chunk{Shielded, t.input[innerStart:innerEnd]}, true
		}
	}

	if c == '\\' || c == '%' || c == '$' {
		if end, ok := t.scanLatex(); ok {
			chunk := Chunk{Shielded, t.input[start:end]}
			t.cursor = end
			return chunk, true
		}
	}

	if c == '<' {
		if end, opaque, ok := t.scanHTML(); ok {
			if opaque {
				chunk := Chunk{Shielded, t.input[start:end]}
				t.cursor = end
				return chunk, true
			}
			t.emitSmartTag(start, end)
			t.cursor = end
			return t.Next()
		}
	}

	for t.cursor < n {
		if t.mask[t.cursor] {
			break
		}
		cc := t.input[t.cursor]
		if cc == '\\' || cc == '%' || cc == '$' || cc == '<' {
			break
		}
		if cc == '{' && t.peek(1) == ']' {
			break
		}
		t.cursor++
	}

	if t.cursor > start {
		return Chunk{Safe, t.input[start:t.cursor]}, true
	}
	// A structural scanner matched its lead byte but found no terminator
	// (e.g. a lone unterminated '\' at EOF); consume one byte so the scan
	// always makes forward progress.
	t.cursor++
	return Chunk{Safe, t.input[start:t.cursor]}, true
}

func (t *Tokenizer) peek(offset int) byte {
	idx := t.cursor + offset
	if idx >= len(t.input) {
		return 0
	}
	return t.input[idx]
}

func (t *Tokenizer) scanUniversalShield() (int, bool) {
	idx := strings.Index(t.input[t.cursor:], "[}")
	if idx < 0 {
		return 0, false
	}
	return t.cursor + idx + 2, true
}

// buildMask runs every built-in and dictionary-supplied matcher over input
// once, setting every byte the matched ranges cover.
func buildMask(input string, dict *dictionary.Dictionary) []bool {
	mask := make([]bool, len(input))

	for _, re := range builtinTokenRegexes {
		for _, r := range findAllRanges(re, input) {
			fillMask(mask, r.start, r.end)
		}
	}

	if dict == nil {
		return mask
	}

	for _, sr := range dict.ShieldRegexes() {
		for _, r := range shieldRegexRanges(sr, input) {
			fillMask(mask, r.start, r.end)
		}
	}

	for _, m := range dict.ShieldLiteralMatches(input) {
		if validFlanking(input, m.Start, m.End) {
			fillMask(mask, m.Start, m.End)
		}
	}

	return mask
}

func fillMask(mask []bool, start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(mask) {
		end = len(mask)
	}
	for i := start; i < end; i++ {
		mask[i] = true
	}
}

// validFlanking reports whether a literal match at [start,end) sits on
// word boundaries on both sides, so "IT" doesn't shield the middle of
// "ITALIYA".
func validFlanking(input string, start, end int) bool {
	validStart := start == 0 || !isWordByte(input[start-1])
	validEnd := end == len(input) || !isWordByte(input[end])
	return validStart && validEnd
}

// isWordByte treats every non-ASCII byte as word-like, since it always
// belongs to a multi-byte Cyrillic or Latin-diacritic letter in this
// domain — unlike a raw byte-as-Latin1 cast, which would misclassify them.
func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		b >= 0x80
}
