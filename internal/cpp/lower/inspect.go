package lower

import (
	"fmt"
	"strings"

	"github.com/jacoelho/py2cpp/internal/cpp/diagnostics"
	"github.com/jacoelho/py2cpp/internal/cpp/normalize"
	"github.com/jacoelho/py2cpp/internal/cpp/operand"
)

// Inspect reports known limitations for a normalized line after it has been
// translated. It never alters the translation.
func Inspect(line string, number int, result Result) []diagnostics.Issue {
	if result.Kind == KindComment {
		return nil
	}

	var issues []diagnostics.Issue

	if normalize.IsBlock(line) {
		issues = append(issues, diagnostics.New(
			diagnostics.CodeBlockPassthrough,
			number,
			fmt.Sprintf("block statement passed through without translation: %s", line),
		))
	} else {
		for _, pair := range operand.SymbolicRewrites() {
			if strings.Contains(line, pair.Source) {
				issues = append(issues, diagnostics.New(
					diagnostics.CodeOperandNotSubstituted,
					number,
					fmt.Sprintf("operand %q left as is after whitespace removal", pair.Source),
				))
			}
		}
	}

	switch segments := strings.Split(line, "="); {
	case len(segments) > 2:
		issues = append(issues, diagnostics.New(
			diagnostics.CodeComparisonNotAssignment,
			number,
			fmt.Sprintf("line splits into %d segments on '=' and is not treated as an assignment", len(segments)),
		))
	case len(segments) == 2 && strings.ContainsAny(lastChar(segments[0]), "!<>"):
		issues = append(issues, diagnostics.New(
			diagnostics.CodeComparisonAsAssignment,
			number,
			fmt.Sprintf("comparison %q is translated as an assignment to %q", lastChar(segments[0])+"=", segments[0]),
		))
	}

	if printOpenPattern.MatchString(line) {
		if args, nested := printArguments(line); args > 1 || nested {
			issues = append(issues, diagnostics.New(
				diagnostics.CodePrintCallMalformed,
				number,
				fmt.Sprintf("print call with %d arguments (nested calls: %t) is rewritten textually", args, nested),
			))
		}
	}

	return issues
}

// printArguments counts top-level arguments of the first print call in line,
// ignoring commas and parentheses inside double-quoted strings.
func printArguments(line string) (int, bool) {
	body := printOpenPattern.ReplaceAllString(line, "")

	args := 1
	depth := 0
	nested := false
	quoted := false
	empty := true
	for index := 0; index < len(body); index++ {
		char := body[index]
		if char == '"' && (index == 0 || body[index-1] != '\\') {
			quoted = !quoted
		}
		if quoted {
			empty = false
			continue
		}

		switch char {
		case '(':
			depth++
			nested = true
		case ')':
			if depth == 0 {
				if empty {
					return 0, nested
				}
				return args, nested
			}
			depth--
		case ',':
			if depth == 0 {
				args++
			}
		}
		if char != ' ' && char != ')' {
			empty = false
		}
	}

	return args, nested
}

func lastChar(text string) string {
	if text == "" {
		return ""
	}

	return text[len(text)-1:]
}
