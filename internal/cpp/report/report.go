package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"

	"github.com/jacoelho/py2cpp/internal/cpp/diagnostics"
	"github.com/jacoelho/py2cpp/internal/cpp/document"
	"github.com/jacoelho/py2cpp/internal/cpp/lower"
)

// Format determines how summaries are printed.
type Format string

const (
	FormatNone Format = "none"
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// IssueCode classifies translation limitations.
type IssueCode = diagnostics.Code

// Issue captures a specific translation note.
type Issue = diagnostics.Issue

// HasErrors reports whether any issue is error-severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == diagnostics.SeverityError {
			return true
		}
	}

	return false
}

// Summary describes one translation run.
type Summary struct {
	RunID      string             `json:"run_id" yaml:"run_id"`
	Input      string             `json:"input" yaml:"input"`
	Output     string             `json:"output,omitempty" yaml:"output,omitempty"`
	Written    bool               `json:"written" yaml:"written"`
	Lines      int                `json:"lines" yaml:"lines"`
	Blank      int                `json:"blank" yaml:"blank"`
	Emitted    int                `json:"emitted" yaml:"emitted"`
	ByKind     map[lower.Kind]int `json:"by_kind,omitempty" yaml:"by_kind,omitempty"`
	Registered []string           `json:"registered,omitempty" yaml:"registered,omitempty"`
	ByCode     map[IssueCode]int  `json:"by_code,omitempty" yaml:"by_code,omitempty"`
	Issues     []Issue            `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// New starts a summary for input with a fresh run id.
func New(input, output string) Summary {
	return Summary{
		RunID:  uuid.NewString(),
		Input:  input,
		Output: output,
	}
}

// HasErrors reports whether the summary contains any error-severity issue.
func (s Summary) HasErrors() bool {
	return HasErrors(s.Issues)
}

// AddDocument records the lines and issues of a translated document.
func (s *Summary) AddDocument(doc document.Document) {
	s.Blank += doc.Blank
	s.Emitted += len(doc.Lines)
	s.Lines += doc.Blank + len(doc.Lines)
	s.Registered = append(s.Registered, doc.Registered...)

	for _, line := range doc.Lines {
		if s.ByKind == nil {
			s.ByKind = make(map[lower.Kind]int)
		}
		s.ByKind[line.Kind]++
	}

	for _, issue := range doc.Issues {
		s.AddIssue(issue)
	}
}

// AddIssue records one issue, defaulting its path to the input file.
func (s *Summary) AddIssue(issue Issue) {
	if issue.Path == "" {
		issue.Path = s.Input
	}
	if s.ByCode == nil {
		s.ByCode = make(map[IssueCode]int)
	}
	s.ByCode[issue.Code]++
	s.Issues = append(s.Issues, issue)
}

// Write prints the summary in the requested format.
func (s Summary) Write(w io.Writer, format Format) error {
	switch format {
	case FormatNone:
		return nil
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(s)
	case FormatYAML:
		payload, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		_, err = w.Write(payload)
		return err
	case FormatText, "":
		return s.writeText(w)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

func (s Summary) writeText(w io.Writer) error {
	writef := func(format string, args ...any) error {
		if _, err := fmt.Fprintf(w, format, args...); err != nil {
			return err
		}
		return nil
	}

	if err := writef("Translation summary (%s)\n", s.RunID); err != nil {
		return err
	}
	if err := writef("  input: %s\n", s.Input); err != nil {
		return err
	}
	if s.Output != "" {
		status := "written"
		if !s.Written {
			status = "not written"
		}
		if err := writef("  output: %s (%s)\n", s.Output, status); err != nil {
			return err
		}
	}
	if err := writef("  lines: %d\n", s.Lines); err != nil {
		return err
	}
	if err := writef("  blank: %d\n", s.Blank); err != nil {
		return err
	}
	if err := writef("  emitted: %d\n", s.Emitted); err != nil {
		return err
	}

	if len(s.ByKind) > 0 {
		if err := writef("\nLines by kind:\n"); err != nil {
			return err
		}
		kinds := make([]lower.Kind, 0, len(s.ByKind))
		for kind := range s.ByKind {
			kinds = append(kinds, kind)
		}
		slices.Sort(kinds)
		for _, kind := range kinds {
			if err := writef("  - %s: %d\n", kind, s.ByKind[kind]); err != nil {
				return err
			}
		}
	}

	if len(s.Registered) > 0 {
		if err := writef("\nDeclared variables:\n"); err != nil {
			return err
		}
		for _, name := range s.Registered {
			if err := writef("  - %s\n", name); err != nil {
				return err
			}
		}
	}

	if len(s.ByCode) > 0 {
		if err := writef("\nIssues by code:\n"); err != nil {
			return err
		}
		codes := make([]IssueCode, 0, len(s.ByCode))
		for code := range s.ByCode {
			codes = append(codes, code)
		}
		slices.Sort(codes)
		for _, code := range codes {
			if err := writef("  - %s: %d\n", code, s.ByCode[code]); err != nil {
				return err
			}
		}
	}

	return nil
}
