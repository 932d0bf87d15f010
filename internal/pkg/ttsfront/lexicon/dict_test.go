package lexicon

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

var dictTokens = map[string]int64{
	"h": 1, "ay": 2, "dh": 3, "eh": 4, "r": 5, "n": 6, "i3": 7, "hao3": 8,
}

func TestReadLexicon(t *testing.T) {
	input := strings.Join([]string{
		"hi h ay",
		"There dh eh r",
		"你 n i3",
		"好 h hao3",
	}, "\n")

	words, err := ReadLexicon(strings.NewReader(input), dictTokens)
	if err != nil {
		t.Fatalf("ReadLexicon: %v", err)
	}

	want := map[string][]int64{
		"hi":    {1, 2},
		"there": {3, 4, 5},
		"你":     {6, 7},
		"好":     {1, 8},
	}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("words = %v; want %v", words, want)
	}
}

func TestReadLexicon_UnresolvedSymbolSkipsLine(t *testing.T) {
	input := "hi h ay\nbad h xx ay\nthere dh eh r\n"

	words, err := ReadLexicon(strings.NewReader(input), dictTokens)
	if err != nil {
		t.Fatalf("ReadLexicon: %v", err)
	}
	if _, ok := words["bad"]; ok {
		t.Error("entry with unresolved symbol inserted")
	}
	if len(words) != 2 {
		t.Errorf("len = %d; want 2", len(words))
	}
}

func TestReadLexicon_SymbolsAreCaseSensitive(t *testing.T) {
	words, err := ReadLexicon(strings.NewReader("hi H AY\n"), dictTokens)
	if err != nil {
		t.Fatalf("ReadLexicon: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("words = %v; want none", words)
	}
}

func TestReadLexicon_ZeroSymbols(t *testing.T) {
	words, err := ReadLexicon(strings.NewReader("um\nhi h ay\n"), dictTokens)
	if err != nil {
		t.Fatalf("ReadLexicon: %v", err)
	}

	ids, ok := words["um"]
	if !ok {
		t.Fatal("zero-symbol word not inserted")
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v; want empty", ids)
	}
}

func TestReadLexicon_LowercasesASCIIOnly(t *testing.T) {
	words, err := ReadLexicon(strings.NewReader("HI h ay\nÉTÉ eh\n"), dictTokens)
	if err != nil {
		t.Fatalf("ReadLexicon: %v", err)
	}
	if _, ok := words["hi"]; !ok {
		t.Error("HI not stored as hi")
	}
	if _, ok := words["ÉtÉ"]; !ok {
		t.Errorf("non-ASCII letters changed: %v", words)
	}
}

// A duplicate stops loading entirely rather than skipping the one line.
func TestReadLexicon_DuplicateAbortsRemaining(t *testing.T) {
	input := "hi h ay\nHi dh eh\nthere dh eh r\n"

	words, err := ReadLexicon(strings.NewReader(input), dictTokens)
	if !errors.Is(err, ErrDuplicateWord) {
		t.Fatalf("err = %v; want ErrDuplicateWord", err)
	}

	var dup *DuplicateWordError
	if !errors.As(err, &dup) {
		t.Fatalf("err = %T; want *DuplicateWordError", err)
	}
	if dup.Word != "hi" || dup.Line != 2 {
		t.Errorf("dup = %+v; want word hi line 2", dup)
	}

	if got := words["hi"]; !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Errorf("hi = %v; want first pronunciation [1 2]", got)
	}
	if _, ok := words["there"]; ok {
		t.Error("line after duplicate was loaded")
	}
}

func TestReadLexicon_DuplicateOfSkippedLineIsNotDuplicate(t *testing.T) {
	input := "hi h xx\nhi h ay\n"

	words, err := ReadLexicon(strings.NewReader(input), dictTokens)
	if err != nil {
		t.Fatalf("ReadLexicon: %v", err)
	}
	if got := words["hi"]; !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Errorf("hi = %v; want [1 2]", got)
	}
}

func TestReadLexicon_BlankLines(t *testing.T) {
	words, err := ReadLexicon(strings.NewReader("\nhi h ay\n   \nthere dh\n"), dictTokens)
	if err != nil {
		t.Fatalf("ReadLexicon: %v", err)
	}
	if len(words) != 2 {
		t.Errorf("len = %d; want 2", len(words))
	}
}

func TestReadLexicon_UnicodeSpacesAreNotSeparators(t *testing.T) {
	tokens := map[string]int64{"\u3000": 9, "a\u00a0b": 3, "h": 1}
	input := "pause \u3000\nx\u00a0y a\u00a0b h\n"

	words, err := ReadLexicon(strings.NewReader(input), tokens)
	if err != nil {
		t.Fatalf("ReadLexicon: %v", err)
	}

	want := map[string][]int64{
		"pause":    {9},
		"x\u00a0y": {3, 1},
	}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("words = %v; want %v", words, want)
	}
}
