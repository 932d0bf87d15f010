// Package lexicon converts text into the token id sequence expected by a
// VITS style acoustic model. It owns three tables built once at
// construction: the token vocabulary, the pronunciation lexicon and the
// punctuation set. After New returns, a Lexicon is read-only and may be
// shared between goroutines.
package lexicon

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Reserved symbols of the Chinese token set.
const (
	SilenceSymbol = "sil"
	EOSSymbol     = "eos"
)

// Options configures New.
type Options struct {
	// Punctuations is a space separated list of punctuation marks.
	Punctuations string
	// Language is "english" or "chinese", case-insensitive.
	Language string
	// Debug logs the input, its bytes and its units on every conversion.
	Debug bool
	// Strict turns a duplicated lexicon word into a construction error
	// instead of a truncated lexicon.
	Strict bool
	// Logger defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

type Lexicon struct {
	language     Language
	tokens       map[string]int64
	words        map[string][]int64
	punctuations map[string]struct{}
	debug        bool
	logger       zerolog.Logger
}

// New builds a Lexicon from a tokens stream and a lexicon stream. Both
// streams are read to completion. The caller keeps ownership of them.
func New(tokens, lexicon io.Reader, opts Options) (*Lexicon, error) {
	lang, err := ParseLanguage(opts.Language)
	if err != nil {
		return nil, err
	}

	l := &Lexicon{
		language: lang,
		debug:    opts.Debug,
		logger:   log.Logger,
	}
	if opts.Logger != nil {
		l.logger = *opts.Logger
	}

	l.tokens, err = ReadTokens(tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokens: %w", err)
	}

	l.words, err = ReadLexicon(lexicon, l.tokens)
	if err != nil {
		var dup *DuplicateWordError
		if !errors.As(err, &dup) || opts.Strict {
			return nil, fmt.Errorf("failed to load lexicon: %w", err)
		}
		l.logger.Error().
			Str("word", dup.Word).
			Int("line", dup.Line).
			Int("loaded", len(l.words)).
			Msg("Duplicated word, remaining lexicon entries ignored")
	}

	l.punctuations = ParsePunctuations(opts.Punctuations)

	l.logger.Debug().
		Stringer("language", l.language).
		Int("tokens", len(l.tokens)).
		Int("words", len(l.words)).
		Int("punctuations", len(l.punctuations)).
		Msg("Lexicon loaded")

	return l, nil
}

func (l *Lexicon) Language() Language {
	return l.language
}

// TokenID returns the id of a symbol in the token table.
func (l *Lexicon) TokenID(symbol string) (int64, bool) {
	id, ok := l.tokens[symbol]
	return id, ok
}

// Pronunciation returns a copy of the token ids stored for word. The word is
// matched as stored, that is lowercased.
func (l *Lexicon) Pronunciation(word string) ([]int64, bool) {
	ids, ok := l.words[word]
	if !ok {
		return nil, false
	}
	return append([]int64(nil), ids...), true
}

func (l *Lexicon) IsPunctuation(s string) bool {
	_, ok := l.punctuations[s]
	return ok
}

func (l *Lexicon) NumTokens() int       { return len(l.tokens) }
func (l *Lexicon) NumWords() int        { return len(l.words) }
func (l *Lexicon) NumPunctuations() int { return len(l.punctuations) }
