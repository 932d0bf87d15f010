// Package lexical registers the "lexicon" front-end: a tokens.txt and
// lexicon.txt pair looked up word by word.
package lexical

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"ttsfront/internal/pkg/ttsfront/asset"
	"ttsfront/internal/pkg/ttsfront/frontend"
	"ttsfront/internal/pkg/ttsfront/lexicon"
	"ttsfront/internal/pkg/ttsfront/preprocess"
)

const (
	Name = "lexicon"

	DefaultTokensName  = "tokens.txt"
	DefaultLexiconName = "lexicon.txt"
)

func init() {
	frontend.Register(Name, NewFrontend)
}

type Frontend struct {
	name         string
	lexicon      *lexicon.Lexicon
	preprocessor *preprocess.Preprocessor
}

// NewFrontend opens cfg.AssetPath, a directory or .zip bundle, and loads
// the lexicon from it.
func NewFrontend(cfg frontend.Config) (frontend.Frontend, error) {
	src, closer, err := asset.Open(cfg.AssetPath)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	return Load(src, cfg)
}

// Load reads the tokens and lexicon assets named in cfg from src.
func Load(src asset.Source, cfg frontend.Config) (*Frontend, error) {
	tokensName := cfg.TokensName
	if tokensName == "" {
		tokensName = DefaultTokensName
	}
	lexiconName := cfg.LexiconName
	if lexiconName == "" {
		lexiconName = DefaultLexiconName
	}

	tokens, err := src.Open(tokensName)
	if err != nil {
		return nil, fmt.Errorf("failed to open tokens: %w", err)
	}
	defer tokens.Close()

	lex, err := src.Open(lexiconName)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	defer lex.Close()

	l, err := lexicon.New(tokens, lex, lexicon.Options{
		Punctuations: cfg.Punctuations,
		Language:     cfg.Language,
		Debug:        cfg.Debug,
		Strict:       cfg.Strict,
	})
	if err != nil {
		return nil, err
	}

	f := &Frontend{name: cfg.Backend, lexicon: l}
	if f.name == "" {
		f.name = Name
	}
	if cfg.Normalize {
		f.preprocessor = preprocess.New(l.Language() == lexicon.English)
	}

	log.Debug().
		Str("tokens", tokensName).
		Str("lexicon", lexiconName).
		Stringer("language", l.Language()).
		Bool("normalize", cfg.Normalize).
		Msg("Lexicon front-end ready")

	return f, nil
}

func (f *Frontend) ConvertTextToTokenIds(text string) ([]int64, error) {
	if f.preprocessor != nil {
		text = f.preprocessor.Process(text)
	}
	return f.lexicon.ConvertTextToTokenIds(text)
}

// Lexicon exposes the loaded tables for inspection.
func (f *Frontend) Lexicon() *lexicon.Lexicon {
	return f.lexicon
}

func (f *Frontend) Info() frontend.Info {
	return frontend.Info{
		Name:            f.name,
		Language:        f.lexicon.Language().String(),
		NumTokens:       f.lexicon.NumTokens(),
		NumWords:        f.lexicon.NumWords(),
		NumPunctuations: f.lexicon.NumPunctuations(),
	}
}
