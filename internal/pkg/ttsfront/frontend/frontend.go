// Package frontend defines the text front-end interface and a registry of
// named implementations.
package frontend

// Frontend turns text into the token ids consumed by an acoustic model.
type Frontend interface {
	ConvertTextToTokenIds(text string) ([]int64, error)
	Info() Info
}

type Info struct {
	Name            string
	Language        string
	NumTokens       int
	NumWords        int
	NumPunctuations int
}

// Config is shared by all front-ends; each one reads the fields it needs.
type Config struct {
	// AssetPath is a model directory or a .zip bundle.
	AssetPath    string
	TokensName   string
	LexiconName  string
	Punctuations string
	Language     string
	Debug        bool
	// Normalize runs the text preprocessor before conversion.
	Normalize bool
	// Strict fails loading on a duplicated lexicon word.
	Strict  bool
	Backend string
}
