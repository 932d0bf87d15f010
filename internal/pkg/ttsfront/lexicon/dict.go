package lexicon

import (
	"fmt"
	"io"
	"strings"

	"ttsfront/internal/pkg/ttsfront/segment"
)

// ReadLexicon parses a lexicon.txt stream of "<word> <symbol>..." lines into
// a word to token id table, resolving symbols against tokens.
//
// Words are lowercased (ASCII only). A line referencing a symbol that is not
// in tokens is skipped. A word seen twice stops loading: the partially built
// table is returned along with a *DuplicateWordError.
func ReadLexicon(r io.Reader, tokens map[string]int64) (map[string][]int64, error) {
	words := make(map[string][]int64)

	scanner := newScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++

		fields := splitFields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		word := segment.ToLowerASCII(fields[0])
		if _, dup := words[word]; dup {
			return words, &DuplicateWordError{Word: word, Line: lineNum}
		}

		ids, ok := resolve(tokens, fields[1:])
		if !ok {
			continue
		}
		words[word] = ids
	}

	if err := scanner.Err(); err != nil {
		return words, fmt.Errorf("failed to read lexicon: %w", err)
	}

	return words, nil
}

func resolve(tokens map[string]int64, symbols []string) ([]int64, bool) {
	ids := make([]int64, 0, len(symbols))
	for _, s := range symbols {
		id, ok := tokens[s]
		if !ok {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// ParsePunctuations splits a space separated list of punctuation marks.
// Marks are matched exactly; no case folding is applied.
func ParsePunctuations(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, p := range strings.Split(s, " ") {
		if p == "" {
			continue
		}
		set[p] = struct{}{}
	}
	return set
}
