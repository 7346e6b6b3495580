package lex

import (
	"fmt"
	"io"
	"strings"
)

// Token is a single source line with its 1-based line number.
type Token struct {
	Text string
	Line int
}

// Script converts source lines into line tokens, preserving source order.
func Script(lines []string) []Token {
	if len(lines) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(lines))
	for index, line := range lines {
		tokens = append(tokens, Token{
			Text: line,
			Line: index + 1,
		})
	}

	return tokens
}

// Read consumes r fully and splits it into line tokens.
func Read(r io.Reader) ([]Token, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	return Script(Lines(string(payload))), nil
}

// Lines splits text on \n, \r\n and lone \r. A trailing line break does not
// produce an extra empty line.
func Lines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	return strings.Split(text, "\n")
}
