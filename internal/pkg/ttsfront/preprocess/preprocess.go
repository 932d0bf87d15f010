// Package preprocess cleans up raw input before lexicon lookup: Unicode
// normalization, quote and dash folding, whitespace collapsing and, for
// English, spelling out numbers and contractions so that more words are
// found in a pronunciation lexicon.
package preprocess

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	urlRe        = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	emailRe      = regexp.MustCompile(`\S+@\S+\.\S+`)
)

type Preprocessor struct {
	english bool
}

// New returns a Preprocessor. English enables the number, contraction and
// markup rewriting rules; without it only normalization is applied, which
// is what CJK text needs.
func New(english bool) *Preprocessor {
	return &Preprocessor{english: english}
}

func (p *Preprocessor) Process(text string) string {
	text = norm.NFC.String(text)

	if p.english {
		text = urlRe.ReplaceAllString(text, "")
		text = htmlTagRe.ReplaceAllString(text, "")
		text = emailRe.ReplaceAllString(text, "")
		text = normalizeQuotes(text)
		text = expandContractions(text)
		text = expandCurrency(text)
		text = expandTime(text)
		text = expandOrdinals(text)
		text = expandNumbers(text)
	} else {
		text = normalizeQuotes(text)
	}

	text = normalizePunctuation(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

var contractions = map[string]string{
	"won't":   "will not",
	"can't":   "cannot",
	"shan't":  "shall not",
	"let's":   "let us",
	"n't":     " not",
	"'re":     " are",
	"'d":      " would",
	"'ll":     " will",
	"'ve":     " have",
	"'m":      " am",
	"it's":    "it is",
	"he's":    "he is",
	"she's":   "she is",
	"that's":  "that is",
	"what's":  "what is",
	"there's": "there is",
	"where's": "where is",
	"who's":   "who is",
}

// contractionOrder applies whole-word forms before the suffix rules so that
// "can't" becomes "cannot" rather than "ca not".
var contractionOrder = func() []string {
	keys := make([]string, 0, len(contractions))
	for k := range contractions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

var contractionRe = regexp.MustCompile(`(?i)[a-z]+'[a-z]+`)

func expandContractions(text string) string {
	return contractionRe.ReplaceAllStringFunc(text, func(word string) string {
		lower := strings.ToLower(word)
		for _, c := range contractionOrder {
			if lower == c {
				return matchCase(word, contractions[c])
			}
			suffix := strings.HasPrefix(c, "'") || strings.HasPrefix(c, "n'")
			if suffix && strings.HasSuffix(lower, c) {
				return matchCase(word, strings.TrimSuffix(lower, c)+contractions[c])
			}
		}
		return word
	})
}

// matchCase keeps a leading capital of the original word.
func matchCase(orig, repl string) string {
	if orig == "" || repl == "" {
		return repl
	}
	if c := orig[0]; 'A' <= c && c <= 'Z' {
		if r := repl[0]; 'a' <= r && r <= 'z' {
			return string(r-('a'-'A')) + repl[1:]
		}
	}
	return repl
}

var onesWords = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tensWords = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

var scaleWords = []string{"", "thousand", "million", "billion", "trillion"}

// NumberToWords spells out n in English.
func NumberToWords(n int64) string {
	if n == 0 {
		return "zero"
	}

	negative := n < 0
	if negative {
		n = -n
	}

	var parts []string
	for scale := 0; n > 0; scale++ {
		if chunk := n % 1000; chunk > 0 {
			words := chunkToWords(int(chunk))
			if scale > 0 && scale < len(scaleWords) {
				words += " " + scaleWords[scale]
			}
			parts = append([]string{words}, parts...)
		}
		n /= 1000
	}

	result := strings.Join(parts, " ")
	if negative {
		result = "negative " + result
	}
	return result
}

func chunkToWords(n int) string {
	switch {
	case n == 0:
		return ""
	case n < 20:
		return onesWords[n]
	case n < 100:
		if n%10 == 0 {
			return tensWords[n/10]
		}
		return tensWords[n/10] + " " + onesWords[n%10]
	}

	hundreds := onesWords[n/100] + " hundred"
	if n%100 == 0 {
		return hundreds
	}
	return hundreds + " " + chunkToWords(n%100)
}

func parseDigits(s string) int64 {
	var n int64
	for _, c := range s {
		n = n*10 + int64(c-'0')
	}
	return n
}

var numberRe = regexp.MustCompile(`\b\d{1,15}\b`)

func expandNumbers(text string) string {
	return numberRe.ReplaceAllStringFunc(text, func(match string) string {
		return NumberToWords(parseDigits(match))
	})
}

var currencyRe = regexp.MustCompile(`\$(\d+)(?:\.(\d{2}))?`)

func expandCurrency(text string) string {
	return currencyRe.ReplaceAllStringFunc(text, func(match string) string {
		parts := currencyRe.FindStringSubmatch(match)

		dollars := parseDigits(parts[1])
		result := NumberToWords(dollars) + " dollars"
		if dollars == 1 {
			result = NumberToWords(dollars) + " dollar"
		}

		if parts[2] != "" && parts[2] != "00" {
			cents := parseDigits(parts[2])
			result += " and " + NumberToWords(cents) + " cents"
			if cents == 1 {
				result = strings.TrimSuffix(result, "s")
			}
		}
		return result
	})
}

var timeRe = regexp.MustCompile(`\b(\d{1,2}):(\d{2})(?:\s*([aApP][mM]))?\b`)

func expandTime(text string) string {
	return timeRe.ReplaceAllStringFunc(text, func(match string) string {
		parts := timeRe.FindStringSubmatch(match)
		hour, minute := parseDigits(parts[1]), parseDigits(parts[2])
		suffix := strings.ToLower(parts[3])

		result := NumberToWords(hour)
		switch {
		case minute == 0 && suffix == "":
			result += " o'clock"
		case minute == 0:
		case minute < 10:
			result += " oh " + NumberToWords(minute)
		default:
			result += " " + NumberToWords(minute)
		}
		if suffix != "" {
			result += " " + suffix
		}
		return result
	})
}

var ordinalRe = regexp.MustCompile(`\b(\d{1,3}(?:,\d{3})+|\d+)(?:st|nd|rd|th)\b`)

var ordinalWords = map[int64]string{
	1: "first", 2: "second", 3: "third", 4: "fourth", 5: "fifth",
	6: "sixth", 7: "seventh", 8: "eighth", 9: "ninth", 10: "tenth",
	11: "eleventh", 12: "twelfth", 13: "thirteenth", 14: "fourteenth",
	15: "fifteenth", 16: "sixteenth", 17: "seventeenth", 18: "eighteenth",
	19: "nineteenth", 20: "twentieth", 30: "thirtieth", 40: "fortieth",
	50: "fiftieth", 60: "sixtieth", 70: "seventieth", 80: "eightieth",
	90: "ninetieth",
}

// OrdinalToWords spells out n as an English ordinal: only the last word
// takes the ordinal form.
func OrdinalToWords(n int64) string {
	rest := n % 100
	if rest == 0 {
		return NumberToWords(n) + "th"
	}

	word, ok := ordinalWords[rest]
	if !ok {
		word = tensWords[rest/10] + " " + ordinalWords[rest%10]
	}
	if n -= rest; n > 0 {
		return NumberToWords(n) + " " + word
	}
	return word
}

func expandOrdinals(text string) string {
	return ordinalRe.ReplaceAllStringFunc(text, func(match string) string {
		digits := strings.ReplaceAll(ordinalRe.FindStringSubmatch(match)[1], ",", "")
		return OrdinalToWords(parseDigits(digits))
	})
}

var quoteReplacer = strings.NewReplacer(
	"“", "\"",
	"”", "\"",
	"‘", "'",
	"’", "'",
	"«", "\"",
	"»", "\"",
)

func normalizeQuotes(text string) string {
	return quoteReplacer.Replace(text)
}

var punctuationReplacer = strings.NewReplacer(
	"—", ", ",
	"–", ", ",
	"…", "...",
	"•", ",",
)

func normalizePunctuation(text string) string {
	return punctuationReplacer.Replace(text)
}
