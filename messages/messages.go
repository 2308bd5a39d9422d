// Package messages holds the bilingual (Joriy/Kelgusi) user-facing string
// catalog backing latinga.Facade.Message and the validator's diagnostic text.
//
// Key is a plain int enum with Sprintf-style templates per entry, following
// the enum+String()+name-table idiom used for small closed sets elsewhere
// in this kind of codebase.
package messages

import (
	"fmt"

	"github.com/chapani/latinga/config"
)

// Key identifies one catalog entry. Entries whose text varies by argument
// (the replacement mark in OldSpellingChar, the count in MoreErrors) are
// Sprintf templates; pass the substitution as an argument to For.
type Key int

const (
	CheckHeader        Key = iota // header line for a CLI validation run
	ErrorLabel                    // short "error"/"hato" label
	TutuqAdvice                   // hint to run the auto-fix command
	OldSpellingChar               // "%s" = the canonical mark that should be used
	SyllableSeparator             // sh/ch ambiguity needs a separator
	MoreErrors                    // "%d" = remaining error count not shown
	ProcessingFile                // "%s" = path being translated
	ProcessingError               // "%s %s" = path, underlying error
	ProcessingSuccess             // "%d" = file count
	FileNotFound                  // input file missing
)

// keyNames maps Key values to their string names, for diagnostics.
var keyNames = [...]string{
	CheckHeader:       "CheckHeader",
	ErrorLabel:        "ErrorLabel",
	TutuqAdvice:       "TutuqAdvice",
	OldSpellingChar:   "OldSpellingChar",
	SyllableSeparator: "SyllableSeparator",
	MoreErrors:        "MoreErrors",
	ProcessingFile:    "ProcessingFile",
	ProcessingError:   "ProcessingError",
	ProcessingSuccess: "ProcessingSuccess",
	FileNotFound:      "FileNotFound",
}

// String returns the name of the key.
func (k Key) String() string {
	if int(k) >= 0 && int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// joriyTemplates and kelgusiTemplates back For; indexed by Key.
var joriyTemplates = [...]string{
	CheckHeader:       "[!] Imlo xatolari aniqlandi",
	ErrorLabel:        "xato",
	TutuqAdvice:       "Maslahat: Avtomatik tuzatish uchun 'latinga' buyrugʻini ishlating.",
	OldSpellingChar:   "Eski imlo belgisi aniqlandi. '%s' harfidan foydalaning.",
	SyllableSeparator: "Shubhali 'sh/ch' birikmasi. Tutuq belgisi bilan ajrating.",
	MoreErrors:        "  ... va yana %d ta xatolik.",
	ProcessingFile:    "Oʻgirilmoqda: %s",
	ProcessingError:   "Xatolik! %s: %s",
	ProcessingSuccess: "Muvaffaqiyatli yakunlandi: %d ta fayl",
	FileNotFound:      "Xatolik: Fayl topilmadi.",
}

var kelgusiTemplates = [...]string{
	CheckHeader:       "[!] Imlo hatolari aniqlandi",
	ErrorLabel:        "hato",
	TutuqAdvice:       "Maslahat: Avtomatik tuzatiş uchun 'latinga' buyruğini işlating.",
	OldSpellingChar:   "Eski imlo belgisi aniqlandi. '%s' harfidan foydalaning.",
	SyllableSeparator: "Şubhali 'sh/ch' birikmasi. Tutuq belgisi bilan ajrating.",
	MoreErrors:        "  ... va yana %d ta hatolik.",
	ProcessingFile:    "Ögirilmoqda: %s",
	ProcessingError:   "Hatolik! %s: %s",
	ProcessingSuccess: "Muvaffaqiyatli yakunlandi: %d ta fayl",
	FileNotFound:      "Hatolik: Fayl topilmadi.",
}

// For returns the localized, formatted text for key in mode. Extra args are
// passed through fmt.Sprintf; keys with no placeholders ignore them.
func For(mode config.Mode, key Key, args ...any) string {
	tmpl := template(mode, key)
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

func template(mode config.Mode, key Key) string {
	templates := joriyTemplates
	if mode == config.Kelgusi {
		templates = kelgusiTemplates
	}
	if int(key) < 0 || int(key) >= len(templates) {
		return ""
	}
	return templates[key]
}
