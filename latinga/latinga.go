// Package latinga is the library façade: it wires config.Config,
// engine.Engine, validator.Validate, and messages.For behind a small,
// explicit constructor, extended with functional options for optional
// ambient wiring.
package latinga

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/chapani/latinga/config"
	"github.com/chapani/latinga/engine"
	"github.com/chapani/latinga/messages"
	"github.com/chapani/latinga/validator"
)

// Facade is the single entry point embedders use: one Config in, every
// core operation (translate, validate, localized messages) out.
type Facade struct {
	cfg *config.Config
	eng *engine.Engine
	log zerolog.Logger
}

// Option configures optional ambient behavior on a Facade at construction
// time.
type Option func(*Facade)

// WithLogger installs a zerolog.Logger on the facade and passes it through
// to the underlying Engine. Neither the facade nor the Engine writes log
// events during Translate, TranslateStream or Validate.
func WithLogger(log zerolog.Logger) Option {
	return func(f *Facade) {
		f.log = log
		f.eng.SetLogger(log)
	}
}

// WithWordBufferCap is reserved for tuning the engine's reusable word
// buffer; present releases of engine.Engine size that buffer internally,
// so this option is a documented no-op placeholder kept for interface
// stability.
func WithWordBufferCap(int) Option {
	return func(*Facade) {}
}

// New builds a Facade bound to cfg, applying opts in order.
func New(cfg *config.Config, opts ...Option) *Facade {
	f := &Facade{
		cfg: cfg,
		eng: engine.New(cfg),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Translate converts s under the Facade's Config.Mode.
func (f *Facade) Translate(s string) string {
	return f.eng.Translate(s)
}

// TranslateStream converts s and writes the result to w.
func (f *Facade) TranslateStream(s string, w io.Writer) error {
	return f.eng.TranslateStream(s, w)
}

// Validate scans s for legacy-orthography artefacts, keeping up to limit
// errors in detail.
func (f *Facade) Validate(s string, limit int) validator.Summary {
	return validator.Validate(s, limit, f.cfg)
}

// Message returns the localized text for key in the Facade's Config.Mode.
func (f *Facade) Message(key messages.Key) string {
	return messages.For(f.cfg.Mode, key)
}

// Mode reports the Facade's configured orthography.
func (f *Facade) Mode() config.Mode {
	return f.cfg.Mode
}
