package lower

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jacoelho/py2cpp/internal/cpp/normalize"
	"github.com/jacoelho/py2cpp/internal/cpp/operand"
)

const targetCommentMarker = "//"

var (
	printOpenPattern  = regexp.MustCompile(`^\s*print\(`)
	printClosePattern = regexp.MustCompile(`\)(\n?)$`)
)

// Stage rewrites one line of text.
type Stage func(ctx *Context, line string) Result

// Operators rewrites comment lines and stops, or substitutes space-padded
// operand tokens and continues.
func Operators(_ *Context, line string) Result {
	if strings.HasPrefix(line, normalize.CommentMarker) {
		line = strings.ReplaceAll(line, normalize.CommentMarker, targetCommentMarker)
		return Stop(line + "\n").as(KindComment)
	}

	return Continue(operand.Replace(line))
}

// Assignments turns single-equals lines into declarations or assignments.
// Literal right-hand sides always get a typed declaration; only other
// right-hand sides consult the registry.
func Assignments(ctx *Context, line string) Result {
	if !strings.Contains(line, "=") {
		return Continue(line)
	}

	line = strings.ReplaceAll(line, "\n", "")
	parts := strings.Split(line, "=")
	if len(parts) != 2 {
		return Continue(line)
	}

	name, value := parts[0], parts[1]
	trimmed := strings.TrimSpace(value)

	var kind Kind
	switch {
	case isDigits(trimmed):
		kind = KindInt
		line = fmt.Sprintf("int %s = %s;\n", name, value)
	case isDigits(strings.Replace(trimmed, ".", "", 1)):
		kind = KindDouble
		line = fmt.Sprintf("double %s = %s;\n", name, value)
	case strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`):
		kind = KindString
		line = fmt.Sprintf("std::string %s = %s;\n", name, value)
	case ctx.Registry.Has(name):
		kind = KindAssign
		line += "\n"
	default:
		kind = KindAuto
		line = fmt.Sprintf("auto %s = %s;\n", name, value)
	}

	ctx.Registry.Add(name)
	return Continue(line).as(kind)
}

// Builtins rewrites a leading print( and a trailing ) into stream insertion.
// Parentheses are not balanced.
func Builtins(_ *Context, line string) Result {
	var kind Kind
	if printOpenPattern.MatchString(line) {
		kind = KindPrint
		line = printOpenPattern.ReplaceAllString(line, "cout << ")
	}
	line = printClosePattern.ReplaceAllString(line, " << endl;\n${1}")

	return Continue(line).as(kind)
}

// Terminate appends a statement terminator to non-structural lines.
func Terminate(result Result) Result {
	if result.Stopped() {
		return result
	}

	stripped := strings.TrimSpace(result.Text)
	if stripped == "" ||
		strings.HasSuffix(stripped, "{") ||
		strings.HasSuffix(stripped, "}") ||
		strings.HasSuffix(stripped, ";") ||
		strings.HasPrefix(stripped, normalize.CommentMarker) {
		return result
	}

	result.Text = strings.TrimRightFunc(result.Text, unicode.IsSpace) + ";\n"
	return result
}

func isDigits(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
