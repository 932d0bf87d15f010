package lexicon

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedToken  = errors.New("malformed token line")
	ErrDuplicateWord   = errors.New("duplicated word")
	ErrUnknownLanguage = errors.New("unknown language")
	ErrMissingToken    = errors.New("missing token")
)

// ParseError reports a line of a token file that could not be parsed.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DuplicateWordError reports the word that stopped lexicon loading.
type DuplicateWordError struct {
	Word string
	Line int
}

func (e *DuplicateWordError) Error() string {
	return fmt.Sprintf("line %d: %v: %s", e.Line, ErrDuplicateWord, e.Word)
}

func (e *DuplicateWordError) Unwrap() error { return ErrDuplicateWord }

// MissingTokenError reports a reserved or punctuation symbol absent from the
// token table at conversion time.
type MissingTokenError struct {
	Symbol string
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("%v: %q", ErrMissingToken, e.Symbol)
}

func (e *MissingTokenError) Unwrap() error { return ErrMissingToken }
