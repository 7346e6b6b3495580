package document

import (
	"fmt"
	"io"

	"github.com/jacoelho/py2cpp/internal/cpp/diagnostics"
	"github.com/jacoelho/py2cpp/internal/cpp/lex"
	"github.com/jacoelho/py2cpp/internal/cpp/lower"
	"github.com/jacoelho/py2cpp/internal/cpp/normalize"
)

const (
	// Header opens the translated document.
	Header = "#include <iostream>\n#include <string>\nusing namespace std;\n\nint main() {\n\n"
	// Footer closes the entry point.
	Footer = "\treturn 0;\n}"
	// Indent prefixes every translated line.
	Indent = "\t"
)

// Line is one translated source line.
type Line struct {
	Number     int
	Source     string
	Normalized string
	Text       string
	Kind       lower.Kind
}

// Document is the translated frame plus per-line output.
type Document struct {
	Lines      []Line
	Blank      int
	Registered []string
	Issues     []diagnostics.Issue
}

// Body returns the indented translated lines without header or footer.
func (d Document) Body() string {
	var size int
	for _, line := range d.Lines {
		size += len(Indent) + len(line.Text)
	}

	body := make([]byte, 0, size)
	for _, line := range d.Lines {
		body = append(body, Indent...)
		body = append(body, line.Text...)
	}

	return string(body)
}

// String renders the full document.
func (d Document) String() string {
	return Header + d.Body() + Footer
}

// Translate rewrites tokens with a fresh run context.
func Translate(tokens []lex.Token) Document {
	doc, _ := translate(tokens, nil)
	return doc
}

// Write translates tokens and writes the document to w as each line is
// produced.
func Write(w io.Writer, tokens []lex.Token) (Document, error) {
	if _, err := io.WriteString(w, Header); err != nil {
		return Document{}, fmt.Errorf("write header: %w", err)
	}

	doc, err := translate(tokens, func(line Line) error {
		if _, err := io.WriteString(w, Indent+line.Text); err != nil {
			return fmt.Errorf("write line %d: %w", line.Number, err)
		}
		return nil
	})
	if err != nil {
		return Document{}, err
	}

	if _, err := io.WriteString(w, Footer); err != nil {
		return Document{}, fmt.Errorf("write footer: %w", err)
	}

	return doc, nil
}

func translate(tokens []lex.Token, emit func(Line) error) (Document, error) {
	ctx := lower.NewContext()
	var doc Document

	for _, token := range tokens {
		normalized := normalize.Line(token.Text)
		if normalized == "" {
			doc.Blank++
			continue
		}

		result := ctx.Line(normalized)
		line := Line{
			Number:     token.Line,
			Source:     token.Text,
			Normalized: normalized,
			Text:       result.Text,
			Kind:       result.Kind,
		}
		doc.Lines = append(doc.Lines, line)
		doc.Issues = append(doc.Issues, lower.Inspect(normalized, token.Line, result)...)

		if emit != nil {
			if err := emit(line); err != nil {
				return Document{}, err
			}
		}
	}

	doc.Registered = ctx.Registry.Names()
	return doc, nil
}
