package normalize

import (
	"strings"
	"unicode"
)

// CommentMarker introduces a source comment.
const CommentMarker = "#"

// exemptPrefixes keep their interior spacing. The match is a plain prefix
// test, so identifiers such as "format" are exempt as well.
var exemptPrefixes = []string{
	CommentMarker,
	"def",
	"if",
	"else",
	"while",
	"for",
}

// Line trims raw and, unless it is exempt, deletes every whitespace rune.
func Line(raw string) string {
	line := strings.TrimSpace(raw)
	if IsExempt(line) {
		return line
	}

	return stripSpace(line)
}

// IsExempt reports whether a trimmed line starts with a comment marker or a
// block-introducing keyword.
func IsExempt(line string) bool {
	for _, prefix := range exemptPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}

	return false
}

// IsBlock reports whether a trimmed line starts with a block-introducing
// keyword.
func IsBlock(line string) bool {
	return IsExempt(line) && !strings.HasPrefix(line, CommentMarker)
}

func stripSpace(line string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
}
