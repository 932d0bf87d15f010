package lexicon

import (
	"fmt"

	"ttsfront/internal/pkg/ttsfront/segment"
)

// Language selects the text-to-token algorithm.
type Language int

const (
	English Language = iota + 1
	Chinese
)

// ParseLanguage accepts "english" or "chinese" in any ASCII case.
func ParseLanguage(s string) (Language, error) {
	switch segment.ToLowerASCII(s) {
	case "english":
		return English, nil
	case "chinese":
		return Chinese, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
}

func (l Language) String() string {
	switch l {
	case English:
		return "english"
	case Chinese:
		return "chinese"
	default:
		return fmt.Sprintf("Language(%d)", int(l))
	}
}
