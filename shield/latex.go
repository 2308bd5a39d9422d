package shield

import (
	"strings"

	"github.com/chapani/latinga/symbols"
)

// scanLatex handles the three LaTeX lead bytes: '%' line comments, '$' or
// '$$' math spans, and '\' commands (plain, structural-with-braces, or a
// \begin{verbatim-like-environment} block).
func (t *Tokenizer) scanLatex() (int, bool) {
	switch t.input[t.cursor] {
	case '%':
		if idx := strings.IndexByte(t.input[t.cursor:], '\n'); idx >= 0 {
			return t.cursor + idx, true
		}
		return len(t.input), true

	case '$':
		offset, pattern := 1, "$"
		if t.peek(1) == '$' {
			offset, pattern = 2, "$$"
		}
		if idx := strings.Index(t.input[t.cursor+offset:], pattern); idx >= 0 {
			return t.cursor + offset + idx + len(pattern), true
		}
		return 0, false

	case '\\':
		i := 1
		for t.cursor+i < len(t.input) && isASCIIAlpha(t.input[t.cursor+i]) {
			i++
		}
		cmdName := t.input[t.cursor+1 : t.cursor+i]

		if cmdName == "begin" {
			if envName, ok := t.extractBracedContent(t.cursor + i); ok {
				if symbols.LatexVerbatimEnvironments[envName] {
					closer := `\end{` + envName + `}`
					if idx := strings.Index(t.input[t.cursor:], closer); idx >= 0 {
						return t.cursor + idx + len(closer), true
					}
				}
			}
		}

		if symbols.LatexStructuralCommands[cmdName] {
			return t.scanBalancedBraces(t.cursor + i), true
		}
		return t.cursor + i, true
	}
	return 0, false
}

// extractBracedContent looks, from searchStart, past whitespace and any
// optional-argument [...] for the first '{', and returns the text up to
// its matching '}'. Used to read a \begin{name} environment name.
func (t *Tokenizer) extractBracedContent(searchStart int) (string, bool) {
	i := searchStart
	for i < len(t.input) {
		c := t.input[i]
		if c == '{' {
			break
		}
		if isASCIISpace(c) || c == '[' || c == ']' {
			i++
			continue
		}
		return "", false
	}
	if i >= len(t.input) {
		return "", false
	}
	start := i + 1
	if idx := strings.IndexByte(t.input[start:], '}'); idx >= 0 {
		return t.input[start : start+idx], true
	}
	return "", false
}

// scanBalancedBraces consumes zero or more whitespace-separated {...} or
// [...] argument groups starting at start, tracking nesting depth, and
// returns the position just past the last one.
func (t *Tokenizer) scanBalancedBraces(start int) int {
	cur := start
	for {
		for cur < len(t.input) && isASCIISpace(t.input[cur]) {
			cur++
		}
		if cur >= len(t.input) {
			break
		}

		next := t.input[cur]
		if next != '{' && next != '[' {
			break
		}
		closer := byte('}')
		if next == '[' {
			closer = ']'
		}
		depth := 1
		j := 1
		for cur+j < len(t.input) && depth > 0 {
			switch t.input[cur+j] {
			case next:
				depth++
			case closer:
				depth--
			}
			j++
		}
		cur += j
	}
	return cur
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCIISpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
