package shield

import (
	"strings"
	"testing"

	"github.com/chapani/latinga/dictionary"
)

func tokenizeAll(input string, dict *dictionary.Dictionary) []Chunk {
	return New(input, dict).All()
}

// reconstructs reports whether chunks cover input in order with no gaps
// other than the {] and [} delimiters of universal shields, which the
// tokenizer consumes without emitting (an empty {][} yields no chunk).
func reconstructs(input string, chunks []Chunk) bool {
	cur := 0
	skipEmptyShields := func() {
		for strings.HasPrefix(input[cur:], "{][}") {
			cur += 4
		}
	}
	for _, c := range chunks {
		skipEmptyShields()
		rest := input[cur:]
		if c.Kind == Shielded && strings.HasPrefix(rest, "{]"+c.Text+"[}") {
			cur += len(c.Text) + 4
			continue
		}
		if !strings.HasPrefix(rest, c.Text) {
			return false
		}
		cur += len(c.Text)
	}
	skipEmptyShields()
	return cur == len(input)
}

func TestSafeTextNoShields(t *testing.T) {
	chunks := tokenizeAll("salom dunyo", nil)
	if len(chunks) != 1 || chunks[0].Kind != Safe || chunks[0].Text != "salom dunyo" {
		t.Fatalf("got %+v", chunks)
	}
}

func TestURLShielded(t *testing.T) {
	chunks := tokenizeAll("qarang https://example.com/page bu yerda", nil)
	foundShielded := false
	for _, c := range chunks {
		if c.Kind == Shielded && c.Text == "https://example.com/page" {
			foundShielded = true
		}
	}
	if !foundShielded {
		t.Fatalf("URL not shielded: %+v", chunks)
	}
}

func TestEmailShielded(t *testing.T) {
	chunks := tokenizeAll("murojaat: aziz@mail.uz", nil)
	found := false
	for _, c := range chunks {
		if c.Kind == Shielded && c.Text == "aziz@mail.uz" {
			found = true
		}
	}
	if !found {
		t.Fatalf("email not shielded: %+v", chunks)
	}
}

func TestMarkdownCodeSpanShielded(t *testing.T) {
	chunks := tokenizeAll("matn `код` davom", nil)
	found := false
	for _, c := range chunks {
		if c.Kind == Shielded && c.Text == "`код`" {
			found = true
		}
	}
	if !found {
		t.Fatalf("code span not shielded: %+v", chunks)
	}
}

// TestMarkdownCodeSpanShieldedAfterMultibyteText guards against confusing
// regex match offsets (rune-indexed) with byte offsets into the mask: a
// Cyrillic word ahead of the code span shifts the two units apart, and
// using one for the other would shield bytes inside "Салом" instead of the
// code span, or stop short of it.
func TestMarkdownCodeSpanShieldedAfterMultibyteText(t *testing.T) {
	chunks := tokenizeAll("Салом `код`", nil)
	var gotSafe, gotShielded bool
	for _, c := range chunks {
		if c.Kind == Safe && c.Text == "Салом " {
			gotSafe = true
		}
		if c.Kind == Shielded && c.Text == "`код`" {
			gotShielded = true
		}
	}
	if !gotSafe || !gotShielded {
		t.Fatalf("got %+v, want \"Салом \" Safe and \"`код`\" Shielded", chunks)
	}
}

func TestUniversalShieldStripsDelimiters(t *testing.T) {
	chunks := tokenizeAll("oldin {]матн[} keyin", nil)
	found := false
	for _, c := range chunks {
		if c.Kind == Shielded && c.Text == "матн" {
			found = true
		}
	}
	if !found {
		t.Fatalf("universal shield content not isolated: %+v", chunks)
	}
}

func TestUniversalShieldEmptyRecurses(t *testing.T) {
	chunks := tokenizeAll("oldin {][} keyin", nil)
	for _, c := range chunks {
		if c.Text == "" {
			t.Fatalf("empty chunk leaked through: %+v", chunks)
		}
	}
}

func TestLatexCommandShielded(t *testing.T) {
	chunks := tokenizeAll(`matn \alpha qoldi`, nil)
	found := false
	for _, c := range chunks {
		if c.Kind == Shielded && c.Text == `\alpha` {
			found = true
		}
	}
	if !found {
		t.Fatalf("latex command not shielded: %+v", chunks)
	}
}

func TestLatexStructuralCommandShieldsBraces(t *testing.T) {
	chunks := tokenizeAll(`qarang \ref{бob1} matn`, nil)
	found := false
	for _, c := range chunks {
		if c.Kind == Shielded && c.Text == `\ref{бob1}` {
			found = true
		}
	}
	if !found {
		t.Fatalf("latex structural command not fully shielded: %+v", chunks)
	}
}

func TestLatexLineCommentShielded(t *testing.T) {
	chunks := tokenizeAll("matn % изоh qator\nkeyingi", nil)
	found := false
	for _, c := range chunks {
		if c.Kind == Shielded && c.Text == "% изоh qator" {
			found = true
		}
	}
	if !found {
		t.Fatalf("latex comment not shielded: %+v", chunks)
	}
}

func TestLatexMathSpanShielded(t *testing.T) {
	chunks := tokenizeAll(`natija $x бu$ formula`, nil)
	found := false
	for _, c := range chunks {
		if c.Kind == Shielded && c.Text == "$x бu$" {
			found = true
		}
	}
	if !found {
		t.Fatalf("latex math span not shielded: %+v", chunks)
	}
}

func TestHTMLScriptTagFullyShielded(t *testing.T) {
	chunks := tokenizeAll(`matn <script>бu код();</script> keyin`, nil)
	found := false
	for _, c := range chunks {
		if c.Kind == Shielded && c.Text == "<script>бu код();</script>" {
			found = true
		}
	}
	if !found {
		t.Fatalf("script tag not fully shielded: %+v", chunks)
	}
}

func TestHTMLAttributeSelectiveUnshielding(t *testing.T) {
	chunks := tokenizeAll(`<img src="/a.png" alt="бизнинг расм">`, nil)
	var gotSafe bool
	for _, c := range chunks {
		if c.Kind == Safe && c.Text == "бизнинг расм" {
			gotSafe = true
		}
	}
	if !gotSafe {
		t.Fatalf("alt attribute value should be Safe: %+v", chunks)
	}
	// src is not in TransliterableAttributes, so its value must stay shielded.
	for _, c := range chunks {
		if c.Text == "/a.png" {
			t.Fatalf("src value leaked as its own chunk: %+v", chunks)
		}
	}
}

// TestHTMLAttributeValueEndsCleanOnMultibyteContent guards against the
// attribute-scan regex's match offsets (rune-indexed) being used as byte
// offsets to slice the value: a 2-byte Cyrillic value makes the two units
// diverge, and slicing at the wrong byte would either truncate mid-rune or
// spill into the closing quote/tag.
func TestHTMLAttributeValueEndsCleanOnMultibyteContent(t *testing.T) {
	chunks := tokenizeAll(`<img alt="Салом">`, nil)
	var gotSafe bool
	for _, c := range chunks {
		if c.Kind == Safe && c.Text == "Салом" {
			gotSafe = true
		}
	}
	if !gotSafe {
		t.Fatalf("got %+v, want a Safe chunk exactly \"Салом\"", chunks)
	}
}

func TestDictionaryLiteralShieldRespectsWordBoundary(t *testing.T) {
	d := dictionary.New()
	if err := d.LoadShields("IT\n"); err != nil {
		t.Fatal(err)
	}
	chunks := tokenizeAll("biz IT sohasida ishlaymiz, lekin ITALIYA emas", d)
	sawShieldedIT := false
	for _, c := range chunks {
		if c.Kind == Shielded && c.Text == "IT" {
			sawShieldedIT = true
		}
		if c.Kind == Shielded && c.Text == "ITALIYA" {
			t.Fatalf("ITALIYA should not be shielded by the IT literal: %+v", chunks)
		}
	}
	reassembled := ""
	for _, c := range chunks {
		reassembled += c.Text
	}
	if reassembled != "biz IT sohasida ishlaymiz, lekin ITALIYA emas" {
		t.Fatalf("chunks don't reconstruct input: %q", reassembled)
	}
	if !sawShieldedIT {
		t.Fatalf("standalone IT not shielded: %+v", chunks)
	}
}

func TestDictionaryRegexShieldNarrowsToGroup1(t *testing.T) {
	d := dictionary.New()
	if err := d.LoadShields(`raqam:(\d{3}-\d{4})\b`); err != nil {
		t.Fatal(err)
	}
	chunks := tokenizeAll("telefon raqam:555-1234 qoldi", d)
	found := false
	for _, c := range chunks {
		if c.Kind == Shielded && c.Text == "555-1234" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected capture group 1 to narrow the shield: %+v", chunks)
	}
}

func TestChunksReconstructInput(t *testing.T) {
	inputs := []string{
		"",
		"oddiy matn",
		`\begin{verbatim}ичида hech narsa\end{verbatim} keyin matn`,
		`<div title="sarlavha">ichki matn</div>`,
		"https://a.uz va aziz@b.uz va {]qalqon[} va oxiri",
	}
	for _, in := range inputs {
		chunks := tokenizeAll(in, nil)
		if !reconstructs(in, chunks) {
			t.Errorf("reconstruction mismatch for %q: got %+v", in, chunks)
		}
	}
}

func FuzzTokenizer(f *testing.F) {
	f.Add("salom dunyo")
	f.Add("https://example.com/path?q=1")
	f.Add(`\ref{1}`)
	f.Add(`<script>a</script>`)
	f.Add("{]qalqon[}")
	f.Add("{][}")
	f.Add("matn % izoh\nkeyin")
	f.Add("$x+y$")
	f.Add("")
	f.Add("\\")
	f.Add("<")
	f.Add("{]")
	f.Add("\x00\xff")

	f.Fuzz(func(t *testing.T, s string) {
		chunks := New(s, nil).All()
		if !reconstructs(s, chunks) {
			t.Fatalf("chunks don't reconstruct input: input=%q got=%+v", s, chunks)
		}
	})
}
