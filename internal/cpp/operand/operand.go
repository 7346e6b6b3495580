package operand

import "strings"

// Pair maps one source operator or keyword to its target spelling.
type Pair struct {
	Source string
	Target string
}

var table = []Pair{
	{Source: "+", Target: "+"},
	{Source: "-", Target: "-"},
	{Source: "*", Target: "*"},
	{Source: "/", Target: "/"},
	{Source: "%", Target: "%"},
	{Source: "**", Target: "pow"},
	{Source: "==", Target: "=="},
	{Source: "!=", Target: "!="},
	{Source: "<", Target: "<"},
	{Source: ">", Target: ">"},
	{Source: "<=", Target: "<="},
	{Source: ">=", Target: ">="},
	{Source: "and", Target: "&&"},
	{Source: "or", Target: "||"},
	{Source: "not", Target: "!"},
}

// Table returns a copy of the mapping in substitution order.
func Table() []Pair {
	return append([]Pair(nil), table...)
}

// Lookup returns the target token for source.
func Lookup(source string) (string, bool) {
	for _, pair := range table {
		if pair.Source == source {
			return pair.Target, true
		}
	}

	return "", false
}

// Replace substitutes every space-padded source token with its space-padded
// target, entry by entry. Later entries see the output of earlier ones.
func Replace(line string) string {
	for _, pair := range table {
		line = strings.ReplaceAll(line, " "+pair.Source+" ", " "+pair.Target+" ")
	}

	return line
}

// SymbolicRewrites returns punctuation-only entries whose target differs from
// the source token.
func SymbolicRewrites() []Pair {
	var pairs []Pair
	for _, pair := range table {
		if pair.Source == pair.Target || isWord(pair.Source) {
			continue
		}
		pairs = append(pairs, pair)
	}

	return pairs
}

func isWord(token string) bool {
	for index := 0; index < len(token); index++ {
		char := token[index]
		if (char < 'a' || char > 'z') && (char < 'A' || char > 'Z') {
			return false
		}
	}

	return token != ""
}
