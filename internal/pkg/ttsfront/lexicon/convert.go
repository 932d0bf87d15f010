package lexicon

import (
	"fmt"
	"strings"

	"ttsfront/internal/pkg/ttsfront/segment"
)

// ConvertTextToTokenIds maps text to token ids using the algorithm of the
// configured language. Unknown words are logged and skipped. The returned
// slice is owned by the caller.
func (l *Lexicon) ConvertTextToTokenIds(text string) ([]int64, error) {
	switch l.language {
	case English:
		return l.convertEnglish(text)
	case Chinese:
		return l.convertChinese(text)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownLanguage, l.language)
	}
}

func (l *Lexicon) convertChinese(text string) ([]int64, error) {
	words := segment.Split(text)
	l.dump("Input text", text, words)

	sil, err := l.reserved(SilenceSymbol)
	if err != nil {
		return nil, err
	}
	eos, err := l.reserved(EOSSymbol)
	if err != nil {
		return nil, err
	}

	ans := make([]int64, 0, 2*len(words)+3)
	ans = append(ans, sil)

	for _, w := range words {
		if l.IsPunctuation(w) {
			ans = append(ans, sil)
			continue
		}

		ids, ok := l.words[w]
		if !ok {
			l.logger.Warn().Str("word", w).Msg("OOV word, ignoring it")
			continue
		}
		ans = append(ans, ids...)
	}

	return append(ans, sil, eos), nil
}

func (l *Lexicon) convertEnglish(text string) ([]int64, error) {
	text = segment.ToLowerASCII(text)
	words := segment.Split(text)
	l.dump("Input text (lowercase)", text, words)

	blank, err := l.reserved(BlankSymbol)
	if err != nil {
		return nil, err
	}

	ans := make([]int64, 0, 4*len(words))
	for _, w := range words {
		if l.IsPunctuation(w) {
			id, err := l.reserved(w)
			if err != nil {
				return nil, err
			}
			ans = append(ans, id)
			continue
		}

		ids, ok := l.words[w]
		if !ok {
			l.logger.Warn().Str("word", w).Msg("OOV word, ignoring it")
			continue
		}
		ans = append(ans, ids...)
		ans = append(ans, blank)
	}

	// Drops the blank after the last word. When the text ends with a
	// punctuation mark this drops the mark instead.
	if len(ans) > 0 {
		ans = ans[:len(ans)-1]
	}

	return ans, nil
}

func (l *Lexicon) reserved(symbol string) (int64, error) {
	id, ok := l.tokens[symbol]
	if !ok {
		return 0, &MissingTokenError{Symbol: symbol}
	}
	return id, nil
}

func (l *Lexicon) dump(label, text string, words []string) {
	if !l.debug {
		return
	}

	var hex strings.Builder
	for i := 0; i < len(text); i++ {
		if i > 0 {
			hex.WriteByte(' ')
		}
		fmt.Fprintf(&hex, "%02x", text[i])
	}

	l.logger.Info().
		Str("text", text).
		Str("bytes", hex.String()).
		Strs("words", words).
		Msg(label)
}
