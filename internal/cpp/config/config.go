package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacoelho/py2cpp/internal/cpp/report"
)

const (
	DefaultInputFile  = "test.py"
	DefaultOutputFile = "test.cpp"
)

var (
	ErrNoArguments         = errors.New("no arguments provided")
	ErrHelp                = errors.New("help requested")
	ErrMissingInput        = errors.New("--input is required")
	ErrMissingOutput       = errors.New("--out is required")
	ErrTooManyArguments    = errors.New("at most two positional arguments are allowed")
	ErrConflictingInput    = errors.New("input given both as flag and positional argument")
	ErrInvalidReportFormat = errors.New("--report must be one of: none, text, json, yaml")
)

// Config defines CLI options for the translation command.
type Config struct {
	InputFile    string
	OutputFile   string
	NoClobber    bool
	DryRun       bool
	ReportFormat report.Format
}

// Parse parses and validates CLI arguments.
func Parse(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, ErrNoArguments
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	input := fs.String("input", DefaultInputFile, "Path to the source script")
	out := fs.String("out", DefaultOutputFile, "Path of the translated file")
	noClobber := fs.Bool("no-clobber", false, "Do not replace an existing output file")
	dryRun := fs.Bool("dry-run", false, "Translate without writing the output file")
	reportFormat := fs.String("report", string(report.FormatNone), "Report format: none, text, json or yaml")

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, ErrHelp
		}
		return nil, fmt.Errorf("parse arguments: %w", err)
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	switch positional := fs.Args(); len(positional) {
	case 0:
	case 1, 2:
		if explicit["input"] || (len(positional) == 2 && explicit["out"]) {
			return nil, ErrConflictingInput
		}
		*input = positional[0]
		if len(positional) == 2 {
			*out = positional[1]
		}
	default:
		return nil, ErrTooManyArguments
	}

	if strings.TrimSpace(*input) == "" {
		return nil, ErrMissingInput
	}
	if strings.TrimSpace(*out) == "" && !*dryRun {
		return nil, ErrMissingOutput
	}

	if _, err := os.Stat(*input); err != nil {
		return nil, fmt.Errorf("input file not accessible: %w", err)
	}

	parsedReportFormat, err := parseReportFormat(*reportFormat)
	if err != nil {
		return nil, err
	}

	return &Config{
		InputFile:    *input,
		OutputFile:   *out,
		NoClobber:    *noClobber,
		DryRun:       *dryRun,
		ReportFormat: parsedReportFormat,
	}, nil
}

func parseReportFormat(input string) (report.Format, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", string(report.FormatNone):
		return report.FormatNone, nil
	case string(report.FormatText):
		return report.FormatText, nil
	case string(report.FormatJSON):
		return report.FormatJSON, nil
	case string(report.FormatYAML), "yml":
		return report.FormatYAML, nil
	default:
		return "", fmt.Errorf("%w, got: %s", ErrInvalidReportFormat, input)
	}
}

// Usage returns command usage text.
func Usage() string {
	return `py2cpp - rewrite simple scripts into C++-style source

Usage:
  py2cpp [--input FILE] [--out FILE] [--no-clobber] [--dry-run] [--report none|text|json|yaml]
  py2cpp INPUT [OUTPUT]

Options:
  --input FILE      Path to the source script (default: test.py)
  --out FILE        Path of the translated file (default: test.cpp)
  --no-clobber      Do not replace an existing output file
  --dry-run         Translate without writing the output file
  --report FORMAT   Report format: none, text, json or yaml (default: none)
  -h, --help        Show this help message`
}
