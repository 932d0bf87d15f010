// Package segment splits raw text into the word-like units looked up in a
// pronunciation lexicon.
package segment

import (
	"unicode"
	"unicode/utf8"
)

// Split breaks text into units. Whitespace separates units and is dropped.
// Punctuation and symbol runes (except the apostrophe) and runes that take
// three or more bytes in UTF-8 (CJK ideographs, kana, hangul, full-width
// punctuation) each become a unit of their own. Everything else, such as
// ASCII letters, digits and two-byte Latin or Cyrillic letters, is grouped
// into maximal runs.
func Split(text string) []string {
	units := make([]string, 0, len(text)/2+1)

	start := -1
	flush := func(end int) {
		if start >= 0 {
			units = append(units, text[start:end])
			start = -1
		}
	}

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case r == utf8.RuneError && size <= 1:
			// keep undecodable bytes verbatim inside the current run
			if start < 0 {
				start = i
			}
		case unicode.IsSpace(r):
			flush(i)
		case standalone(r, size):
			flush(i)
			units = append(units, text[i:i+size])
		default:
			if start < 0 {
				start = i
			}
		}

		i += size
	}
	flush(len(text))

	return units
}

func standalone(r rune, size int) bool {
	if r == '\'' {
		return false
	}
	if size >= 3 {
		return true
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// ToLowerASCII folds A-Z to a-z byte by byte. Non-ASCII bytes are left
// untouched, so multi-byte sequences are never altered.
func ToLowerASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}

	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
