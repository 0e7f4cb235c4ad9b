package scorer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	minTokenLen = 2
	maxTokenLen = 24
)

const tatweel = 'ـ'

var combiningMarks = runes.In(unicode.Mn)

// Tokenize normalizes text into scoring tokens: combining marks
// (Arabic harakat, Latin accents) are stripped after NFD
// decomposition, text is case-folded, and tokens are maximal runs of
// letters. Digits, punctuation, symbols and emoji act as separators,
// so numeric-only tokens never appear. Tokens outside
// [minTokenLen, maxTokenLen] runes are dropped.
func Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	// The transform chain keeps internal state, so build it per call
	// to stay safe under concurrent scoring.
	t := transform.Chain(norm.NFD, runes.Remove(combiningMarks), norm.NFC)
	cleaned, _, err := transform.String(t, text)
	if err != nil {
		cleaned = text
	}
	cleaned = strings.ToLower(cleaned)

	var tokens []string
	var current []rune

	flush := func() {
		if n := len(current); n >= minTokenLen && n <= maxTokenLen {
			tokens = append(tokens, string(current))
		}
		current = current[:0]
	}

	for _, r := range cleaned {
		switch {
		case r == tatweel:
			// stretches a word without changing it
		case unicode.IsLetter(r):
			current = append(current, r)
		default:
			flush()
		}
	}
	flush()

	return tokens
}
