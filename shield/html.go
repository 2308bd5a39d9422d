package shield

import (
	"strings"
	"unicode"

	"github.com/chapani/latinga/symbols"
)

// scanHTML reads a single '<...>' tag starting at the cursor. A fully
// protected tag (script/style/code/pre) shields through its matching
// closing tag; anything else is a standard tag, returned with opaque=false
// so the caller can split it into shielded structure and transliterable
// attribute values via emitSmartTag.
func (t *Tokenizer) scanHTML() (end int, opaque bool, ok bool) {
	rest := t.input[t.cursor:]
	tagEnd := strings.IndexFunc(rest, func(r rune) bool {
		return unicode.IsSpace(r) || r == '>' || r == '/'
	})
	if tagEnd < 0 {
		return 0, false, false
	}

	tagLower := strings.ToLower(rest[1:tagEnd])
	if symbols.FullyProtectedTags[tagLower] {
		closeTarget := "</" + tagLower + ">"
		if pos := findCaseInsensitive(rest, closeTarget); pos >= 0 {
			return t.cursor + pos + len(closeTarget), true, true
		}
	}

	if idx := strings.IndexByte(rest, '>'); idx >= 0 {
		return t.cursor + idx + 1, false, true
	}
	return 0, false, false
}

// emitSmartTag splits the tag text input[start:end] into a sequence of
// buffered chunks: the tag structure (name, other attributes) stays
// Shielded, but the value of any attribute named in
// symbols.TransliterableAttributes is re-scanned against the mask and
// split into its own Safe/Shielded runs.
func (t *Tokenizer) emitSmartTag(start, end int) {
	tagContent := t.input[start:end]
	lastIdx := 0

	// FindAllStringSubmatchIndex reports byte offsets directly, each match
	// as [wholeStart, wholeEnd, group1Start, group1End, group2Start, group2End].
	for _, m := range reAttrScan.FindAllStringSubmatchIndex(tagContent, -1) {
		if m[2] < 0 || m[4] < 0 {
			continue
		}
		attrName := strings.ToLower(tagContent[m[2]:m[3]])
		valStart, valEnd := m[4], m[5]
		fullVal := tagContent[valStart:valEnd]

		if !symbols.TransliterableAttributes[attrName] {
			continue
		}

		quoteLen := 0
		if len(fullVal) > 0 && (fullVal[0] == '"' || fullVal[0] == '\'') {
			quoteLen = 1
		}
		absValStart := start + valStart + quoteLen
		absValEnd := start + valEnd - quoteLen
		relativeValStart := valStart + quoteLen

		if relativeValStart > lastIdx {
			t.pending = append(t.pending, Chunk{Shielded, tagContent[lastIdx:relativeValStart]})
		}

		vCur := absValStart
		for vCur < absValEnd {
			chunkStart := vCur
			if t.mask[vCur] {
				for vCur < absValEnd && t.mask[vCur] {
					vCur++
				}
				t.pending = append(t.pending, Chunk{Shielded, t.input[chunkStart:vCur]})
			} else {
				for vCur < absValEnd && !t.mask[vCur] {
					vCur++
				}
				t.pending = append(t.pending, Chunk{Safe, t.input[chunkStart:vCur]})
			}
		}
		lastIdx = valEnd - quoteLen
	}

	if lastIdx < len(tagContent) {
		t.pending = append(t.pending, Chunk{Shielded, tagContent[lastIdx:]})
	}
}

func findCaseInsensitive(haystack, needle string) int {
	n := len(needle)
	if len(haystack) < n {
		return -1
	}
	for i := 0; i+n <= len(haystack); i++ {
		if asciiEqualFold(haystack[i:i+n], needle) {
			return i
		}
	}
	return -1
}

func asciiEqualFold(a, b string) bool {
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
