package dictionary

import "github.com/chapani/latinga/internal/ahocorasick"

// ShieldLiteralMatches returns every leftmost-longest match of the loaded
// shield literals in text. Flanking (word-boundary) validation is the
// caller's responsibility (package shield).
func (d *Dictionary) ShieldLiteralMatches(text string) []ahocorasick.Match {
	if d.shieldAutomaton == nil {
		return nil
	}
	return d.shieldAutomaton.FindAll(text)
}

// ShieldRegexes returns the compiled user shield regexes in load order.
func (d *Dictionary) ShieldRegexes() []ShieldRegex {
	return d.shieldRegexes
}

// HasShieldLiterals reports whether any shield literal has been loaded.
func (d *Dictionary) HasShieldLiterals() bool {
	return d.shieldAutomaton != nil
}
