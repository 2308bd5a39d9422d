// Package engine implements the transliteration engine: a streaming,
// chunk-aware rewriter that turns shielded/safe text into either the Joriy
// (digraph, apostrophe) or Kelgusi (single-letter) Latin orthography.
//
// Engine is stateless across calls except for a reusable word buffer, and
// is not safe for concurrent use — callers needing concurrency construct
// one Engine per goroutine (cheap: it owns no large state beyond the
// buffer) or synchronize their own access.
//
// Scans in a cursor-driven, byte-index style but writes through an
// io.Writer sink, so callers can stream output without buffering it all.
package engine

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/chapani/latinga/config"
	"github.com/chapani/latinga/internal/caseutil"
	"github.com/chapani/latinga/shield"
	"github.com/chapani/latinga/symbols"
)

// wordBufferCap is the default reusable word-buffer capacity, sized for
// the common case of short Uzbek words.
const wordBufferCap = 64

// Engine converts text from Cyrillic Uzbek (or mixed-script input) to the
// Latin orthography selected by its Config's Mode.
type Engine struct {
	cfg     *config.Config
	wordBuf []byte
	log     zerolog.Logger
}

// New returns an Engine bound to cfg. cfg is held, not copied: concurrent
// Translate calls against Engines sharing the same cfg are safe as long as
// the cfg's Dictionary is not being loaded into concurrently.
func New(cfg *config.Config) *Engine {
	return &Engine{
		cfg:     cfg,
		wordBuf: make([]byte, 0, wordBufferCap),
		log:     zerolog.Nop(),
	}
}

// SetLogger installs a logger on the Engine. The translation paths do not
// write any log events to it.
func (e *Engine) SetLogger(log zerolog.Logger) {
	e.log = log
}

// Translate converts input to a new string.
func (e *Engine) Translate(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	_ = e.TranslateStream(input, &b)
	return b.String()
}

// TranslateStream converts input and writes the result to w. The only
// error it can return is a write failure from w, wrapped with the kind of
// chunk being written when it happened.
func (e *Engine) TranslateStream(input string, w io.Writer) error {
	tok := newPeekableTokenizer(shield.New(input, e.cfg.Dict))
	e.wordBuf = e.wordBuf[:0]

	var prevChar rune
	havePrev := false

	for {
		chunk, ok := tok.next()
		if !ok {
			break
		}

		switch chunk.Kind {
		case shield.Shielded:
			if _, err := io.WriteString(w, chunk.Text); err != nil {
				return fmt.Errorf("engine: write shielded chunk: %w", err)
			}
			prevChar, havePrev = lastRune(chunk.Text)

		case shield.Safe:
			_, nextIsShielded := tok.peekKind(shield.Shielded)
			p := processor{
				text:            chunk.Text,
				havePrevAtStart: havePrev,
				prevCharAtStart: prevChar,
				nextIsShielded:  nextIsShielded,
				cfg:             e.cfg,
			}
			if err := p.run(w, &e.wordBuf); err != nil {
				return err
			}
			prevChar, havePrev = lastRune(chunk.Text)
		}
	}
	return nil
}

func lastRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r, true
}

// peekableTokenizer adds one-chunk lookahead to shield.Tokenizer, needed
// for the caps-context rule's "don't treat a following Shielded chunk's
// opaque content as uppercase" exception.
type peekableTokenizer struct {
	tok   *shield.Tokenizer
	ahead shield.Chunk
	have  bool
}

func newPeekableTokenizer(tok *shield.Tokenizer) *peekableTokenizer {
	return &peekableTokenizer{tok: tok}
}

func (p *peekableTokenizer) next() (shield.Chunk, bool) {
	if p.have {
		p.have = false
		return p.ahead, true
	}
	return p.tok.Next()
}

// peekKind reports whether the chunk after the current one (without
// consuming it) has the given Kind. If there is no next chunk, it reports
// false.
func (p *peekableTokenizer) peekKind(kind shield.Kind) (shield.Chunk, bool) {
	if !p.have {
		c, ok := p.tok.Next()
		if !ok {
			return shield.Chunk{}, false
		}
		p.ahead, p.have = c, true
	}
	return p.ahead, p.ahead.Kind == kind
}

// processor converts one Safe chunk, given the source state (previous
// source rune, whether the chunk after this one is Shielded) it needs for
// boundary-sensitive rules.
type processor struct {
	text            string
	havePrevAtStart bool
	prevCharAtStart rune
	nextIsShielded  bool
	cfg             *config.Config
}

func (p *processor) run(w io.Writer, wordBuf *[]byte) error {
	prevChar := p.prevCharAtStart
	havePrev := p.havePrevAtStart

	byteIdx := 0
	for byteIdx < len(p.text) {
		c, charLen := utf8.DecodeRuneInString(p.text[byteIdx:])
		isBoundary := !havePrev || !unicode.IsLetter(prevChar)

		if isBoundary && unicode.IsLetter(c) {
			if matchLen, replacement, ok := p.findTrieMatch(byteIdx); ok {
				if len(*wordBuf) > 0 {
					if err := flushWord(w, wordBuf, p.cfg); err != nil {
						return err
					}
				}
				original := p.text[byteIdx : byteIdx+matchLen]
				cased := caseutil.ApplyCase(original, replacement)
				if _, err := io.WriteString(w, cased); err != nil {
					return fmt.Errorf("engine: write trie replacement: %w", err)
				}
				prevChar, havePrev = lastRune(original)
				byteIdx += matchLen
				continue
			}
		}

		converted, consumed := p.convertChar(byteIdx, c, charLen, prevChar, havePrev)

		nextRune, haveNextRune := p.peekChar(byteIdx + charLen)
		isConnectingHyphen := c == '-' && havePrev && unicode.IsLetter(prevChar) &&
			haveNextRune && unicode.IsLetter(nextRune)

		if unicode.IsLetter(c) || isConnectingHyphen {
			*wordBuf = append(*wordBuf, converted...)
		} else {
			if len(*wordBuf) > 0 {
				if err := flushWord(w, wordBuf, p.cfg); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, converted); err != nil {
				return fmt.Errorf("engine: write safe char: %w", err)
			}
		}

		consumedStr := p.text[byteIdx : byteIdx+consumed]
		prevChar, havePrev = lastRune(consumedStr)
		byteIdx += consumed
	}

	if len(*wordBuf) > 0 {
		return flushWord(w, wordBuf, p.cfg)
	}
	return nil
}

// peekChar returns the rune starting at byte index idx within the current
// chunk, or false if idx is out of range.
func (p *processor) peekChar(idx int) (rune, bool) {
	if idx >= len(p.text) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(p.text[idx:])
	return r, true
}

func (p *processor) isVowel(r rune, have bool) bool {
	return have && symbols.IsCyrillicVowel(r)
}

// isCapsContext reports whether the previous or next source rune is
// uppercase, for title-casing multi-letter replacements. If the next rune
// would be the final rune of this chunk and the chunk right after it is
// Shielded, the next-rune check is suppressed (its case can't be inferred
// from opaque shielded content).
func (p *processor) isCapsContext(idx, charLen int, prevChar rune, havePrev bool) bool {
	prevCaps := havePrev && unicode.IsUpper(prevChar)
	next, ok := p.peekChar(idx + charLen)
	if !ok {
		return prevCaps
	}
	_, nextLen := utf8.DecodeRuneInString(p.text[idx+charLen:])
	isEnd := idx+charLen+nextLen >= len(p.text)
	if isEnd && p.nextIsShielded {
		return prevCaps
	}
	return prevCaps || unicode.IsUpper(next)
}

func (p *processor) formatComplex(rep string, isUpper, capsContext bool) string {
	return caseutil.ApplyCaseContext(rep, isUpper, capsContext)
}

// convertChar dispatches a single source rune to its replacement text and
// reports how many source bytes it consumed (more than charLen for the
// two-rune Kelgusi Latin digraphs).
func (p *processor) convertChar(idx int, c rune, charLen int, prevChar rune, havePrev bool) (string, int) {
	isKelgusi := p.cfg.Mode == config.Kelgusi

	switch {
	case symbols.ApostropheVariants[c]:
		return p.handleApostrophe(c, charLen, prevChar, havePrev, idx), charLen

	case symbols.CombiningMarks[c]:
		return p.handleCombiningMark(prevChar, havePrev), charLen
	}

	switch c {
	case 'Е', 'е':
		return p.handleYe(c, idx, charLen, prevChar, havePrev), charLen
	case 'Ц', 'ц':
		return p.handleTs(c, idx, charLen, prevChar, havePrev), charLen
	case 'Ъ', 'ъ':
		return p.handleHardSign(idx, charLen, prevChar, havePrev)
	case 'Ь', 'ь':
		return "", charLen
	case 'Ё', 'ё':
		return p.formatComplex("Yo", unicode.IsUpper(c), p.isCapsContext(idx, charLen, prevChar, havePrev)), charLen
	case 'Ю', 'ю':
		return p.formatComplex("Yu", unicode.IsUpper(c), p.isCapsContext(idx, charLen, prevChar, havePrev)), charLen
	case 'Я', 'я':
		return p.formatComplex("Ya", unicode.IsUpper(c), p.isCapsContext(idx, charLen, prevChar, havePrev)), charLen
	case 'Ғ', 'ғ':
		return p.handleGhayn(c, idx, charLen, prevChar, havePrev, isKelgusi), charLen
	case 'Ў', 'ў':
		return p.handleWav(c, idx, charLen, prevChar, havePrev, isKelgusi), charLen
	case 'Ш', 'ш', 'Щ', 'щ':
		rep := "sh"
		if isKelgusi {
			rep = "ş"
		}
		return p.formatComplex(rep, unicode.IsUpper(c), p.isCapsContext(idx, charLen, prevChar, havePrev)), charLen
	case 'Ч', 'ч':
		rep := "ch"
		if isKelgusi {
			rep = "ç"
		}
		return p.formatComplex(rep, unicode.IsUpper(c), p.isCapsContext(idx, charLen, prevChar, havePrev)), charLen
	}

	if isKelgusi {
		switch c {
		case 's', 'S', 'c', 'C', 'o', 'O', 'g', 'G':
			return p.handleLatinToLatin(idx, c, charLen, prevChar, havePrev)
		}
	}

	return p.handleDefault(c, isKelgusi), charLen
}

// handleApostrophe implements rule 2.
func (p *processor) handleApostrophe(c rune, charLen int, prevChar rune, havePrev bool, idx int) string {
	isKelgusi := p.cfg.Mode == config.Kelgusi
	if havePrev && unicode.IsLetter(prevChar) {
		// Cyrillic о/г are emitted as o/g, so an apostrophe after them
		// resolves the same way as after the Latin letters.
		pl := unicode.ToLower(prevChar)
		if pl == 'o' || pl == 'g' || pl == 'о' || pl == 'г' {
			return string(symbols.OKINA)
		}
		next, ok := p.peekChar(idx + charLen)
		if ok && unicode.IsLetter(next) {
			if isKelgusi {
				return ""
			}
			return string(symbols.TUTUQ)
		}
	}
	return string(c)
}

// handleCombiningMark implements rule 3.
func (p *processor) handleCombiningMark(prevChar rune, havePrev bool) string {
	if havePrev {
		pl := unicode.ToLower(prevChar)
		if pl == 'o' || pl == 'g' {
			return string(symbols.OKINA)
		}
	}
	return ""
}

// handleDefault implements rules 14 (Х/х and Kelgusi X/x), 15 (the 1-to-1
// fallback table), and 16 (pass-through).
func (p *processor) handleDefault(c rune, isKelgusi bool) string {
	if c == 'Х' || c == 'х' || (isKelgusi && (c == 'X' || c == 'x')) {
		if isKelgusi {
			if unicode.IsUpper(c) {
				return "H"
			}
			return "h"
		}
		if unicode.IsUpper(c) {
			return "X"
		}
		return "x"
	}
	if lat, ok := symbols.FallbackLatin[c]; ok {
		return string(lat)
	}
	return string(c)
}
