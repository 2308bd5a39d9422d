// Package config wires up a Dictionary with the default embedded assets
// appropriate to a transliteration Mode, and exposes passthrough loaders
// for caller-supplied overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/chapani/latinga/assets"
	"github.com/chapani/latinga/dictionary"
)

// Mode selects which Latin orthography the engine targets.
type Mode int

const (
	// Joriy is the current (digraph, apostrophe) Latin orthography: sh, ch,
	// oʻ, gʻ.
	Joriy Mode = iota
	// Kelgusi is the upcoming single-letter orthography: ş, ç, ö, ğ.
	Kelgusi
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Joriy:
		return "joriy"
	case Kelgusi:
		return "kelgusi"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalJSON encodes the mode as its lowercase name.
func (m Mode) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts "joriy" or "kelgusi", case-insensitively.
func (m *Mode) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	switch strings.ToLower(s) {
	case "joriy":
		*m = Joriy
	case "kelgusi":
		*m = Kelgusi
	default:
		return fmt.Errorf("config: unknown mode %q", s)
	}
	return nil
}

// Config bundles a Mode with the Dictionary it was bootstrapped against.
type Config struct {
	Mode Mode
	Dict *dictionary.Dictionary
}

// New builds a Config for mode, loading the default embedded assets:
// suffixes and substitutions always; proper nouns only in Kelgusi (where
// a proper noun is separated from a following suffix by an apostrophe);
// healing rules only in Joriy (Kelgusi has no apostrophe to drop). Default
// shields load in both modes. The returned Dictionary logs at Debug level
// via log, or silently if log is the zero value.
func New(mode Mode, log zerolog.Logger) (*Config, error) {
	dict := dictionary.New()
	dict.SetLogger(log)

	dict.LoadSuffixes(assets.Suffixes)
	if mode == Kelgusi {
		dict.LoadProperNouns(assets.ProperNouns)
	}
	dict.LoadSubstitutions(assets.Substitutions)
	if mode == Joriy {
		dict.LoadHealing(assets.Healing)
	}
	if err := dict.LoadShields(assets.Shields); err != nil {
		return nil, fmt.Errorf("config: load default shields: %w", err)
	}

	log.Debug().
		Stringer("mode", mode).
		Interface("stats", dict.Stats()).
		Msg("config: dictionary bootstrapped")

	return &Config{Mode: mode, Dict: dict}, nil
}

// LoadProperNouns passes through to the underlying Dictionary, for
// mode-specific or caller-supplied name lists loaded after New.
func (c *Config) LoadProperNouns(content string) {
	c.Dict.LoadProperNouns(content)
}

// LoadSuffixes passes through to the underlying Dictionary.
func (c *Config) LoadSuffixes(content string) {
	c.Dict.LoadSuffixes(content)
}

// LoadSubstitutions passes through to the underlying Dictionary.
func (c *Config) LoadSubstitutions(content string) {
	c.Dict.LoadSubstitutions(content)
}

// LoadHealing passes through to the underlying Dictionary.
func (c *Config) LoadHealing(content string) {
	c.Dict.LoadHealing(content)
}

// LoadShields passes through to the underlying Dictionary.
func (c *Config) LoadShields(content string) error {
	if err := c.Dict.LoadShields(content); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
