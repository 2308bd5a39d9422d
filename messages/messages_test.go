package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chapani/latinga/config"
)

func TestForFormatsArgs(t *testing.T) {
	got := For(config.Joriy, OldSpellingChar, "ʻ")
	assert.Contains(t, got, "ʻ")
}

func TestForDiffersByMode(t *testing.T) {
	joriy := For(config.Joriy, SyllableSeparator)
	kelgusi := For(config.Kelgusi, SyllableSeparator)
	assert.NotEqual(t, joriy, kelgusi)
	assert.Contains(t, kelgusi, "Ş")
}

func TestForNoArgsPlainTemplate(t *testing.T) {
	got := For(config.Joriy, FileNotFound)
	assert.NotEmpty(t, got)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "CheckHeader", CheckHeader.String())
	assert.Equal(t, "Key(999)", Key(999).String())
}
