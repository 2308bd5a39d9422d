package caseutil

import "golang.org/x/text/unicode/norm"

// NFC runs full Unicode NFC normalization over s. It is a standalone helper:
// the dictionary's healing pass (Dictionary.Heal) does not call it and
// replaces the combining turned-comma ghost mark (U+0312) without
// normalizing first.
func NFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
