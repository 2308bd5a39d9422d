package latinga

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/chapani/latinga/config"
	"github.com/chapani/latinga/dictionary"
	"github.com/chapani/latinga/messages"
)

func bareConfig(mode config.Mode) *config.Config {
	return &config.Config{Mode: mode, Dict: dictionary.New()}
}

func TestTranslateDelegatesToEngine(t *testing.T) {
	f := New(bareConfig(config.Joriy))
	if got := f.Translate("Маъно"); got != "Ma"+"ʼ"+"no" {
		t.Errorf("got %q", got)
	}
}

func TestTranslateStreamWritesToSink(t *testing.T) {
	f := New(bareConfig(config.Kelgusi))
	var b strings.Builder
	if err := f.TranslateStream("choy", &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.String() != "çoy" {
		t.Errorf("got %q, want çoy", b.String())
	}
}

func TestValidateDelegatesToValidator(t *testing.T) {
	f := New(bareConfig(config.Kelgusi))
	s := f.Validate("shahar", 10)
	if s.Total != 1 {
		t.Errorf("got Total=%d, want 1", s.Total)
	}
}

func TestMessageUsesConfiguredMode(t *testing.T) {
	f := New(bareConfig(config.Kelgusi))
	got := f.Message(messages.SyllableSeparator)
	want := messages.For(config.Kelgusi, messages.SyllableSeparator)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWithLoggerInstallsOnFacade(t *testing.T) {
	var buf strings.Builder
	log := zerolog.New(&buf)
	f := New(bareConfig(config.Joriy), WithLogger(log))
	if f.log.GetLevel() != log.GetLevel() {
		t.Errorf("logger not installed on facade")
	}
	_ = f.Translate("test")
}

func TestModeReportsConfig(t *testing.T) {
	f := New(bareConfig(config.Kelgusi))
	if f.Mode() != config.Kelgusi {
		t.Errorf("got %v, want Kelgusi", f.Mode())
	}
}
