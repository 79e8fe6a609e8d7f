// Package natural provides natural string ordering: embedded digit runs are
// compared by numeric value instead of character by character, so "a2" sorts
// before "a10". It is assembled entirely from the compare package combinators
// over a tokenized view of the string.
package natural

import (
	"strconv"

	"github.com/ddirect/compare"
)

type Kind uint8

const (
	Text Kind = iota
	Number
)

// Token is one run of a tokenized string: a contiguous ASCII digit run
// carried as its numeric value, or a contiguous run of everything else
// carried verbatim.
type Token struct {
	Kind   Kind
	Number float64
	Text   string
}

// Tokenize splits s into alternating digit and non-digit runs, covering the
// whole string in order. Digit runs long enough to overflow become positive
// infinity, which the numeric token order still places after all finite runs.
func Tokenize(s string) []Token {
	var tokens []Token
	for s != "" {
		digits := isDigit(s[0])
		n := 1
		for n < len(s) && isDigit(s[n]) == digits {
			n++
		}
		run := s[:n]
		s = s[n:]
		if digits {
			v, _ := strconv.ParseFloat(run, 64)
			tokens = append(tokens, Token{Kind: Number, Number: v})
		} else {
			tokens = append(tokens, Token{Kind: Text, Text: run})
		}
	}
	return tokens
}

// TokenComparator orders tokens with numbers before text: number tokens by
// the full numeric order, text tokens by the given string comparator.
func TokenComparator(text compare.Comparator[string]) compare.Comparator[Token] {
	return compare.TypeFirst(
		func(t Token) (float64, bool) { return t.Number, t.Kind == Number },
		compare.Number[float64](),
		compare.MapBy(text, func(t Token) string { return t.Text }),
	)
}

// Strings orders strings naturally with text runs compared bytewise.
func Strings() compare.Comparator[string] {
	return StringsBy(compare.Ordered[string]())
}

// StringsBy orders strings naturally with text runs compared by text, e.g. a
// locale collation from compare.StringsIn.
func StringsBy(text compare.Comparator[string]) compare.Comparator[string] {
	return compare.MapBy(compare.BySequence(TokenComparator(text)), Tokenize)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
