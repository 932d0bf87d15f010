package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// BlankSymbol is the symbol implied by a token line holding only an id.
const BlankSymbol = " "

const maxLineSize = 1 << 20

// splitFields splits a line on ASCII whitespace only. Other Unicode spaces,
// such as U+3000 or NBSP, are valid symbol and word bytes.
func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return true
		}
		return false
	})
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}

// ReadTokens parses a tokens.txt stream into a symbol to id table.
//
// Each line is either "<symbol> <id>" or just "<id>", the latter mapping the
// blank symbol. Tokens cannot be read with a plain symbol table reader because
// the blank symbol leaves the first column visually empty. A later line for
// the same symbol overrides an earlier one.
func ReadTokens(r io.Reader) (map[string]int64, error) {
	tokens := make(map[string]int64)

	scanner := newScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		fields := splitFields(line)
		var sym, idText string
		switch len(fields) {
		case 0:
			continue
		case 1:
			sym, idText = BlankSymbol, fields[0]
		case 2:
			sym, idText = fields[0], fields[1]
		default:
			return nil, &ParseError{Line: lineNum, Text: line, Err: ErrMalformedToken}
		}

		id, err := strconv.ParseInt(idText, 10, 64)
		if err != nil || id < 0 {
			return nil, &ParseError{Line: lineNum, Text: line, Err: ErrMalformedToken}
		}

		tokens[sym] = id
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tokens: %w", err)
	}

	return tokens, nil
}
