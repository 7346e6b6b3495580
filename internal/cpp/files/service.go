package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacoelho/py2cpp/internal/cpp/config"
	"github.com/jacoelho/py2cpp/internal/cpp/diagnostics"
	"github.com/jacoelho/py2cpp/internal/cpp/document"
	"github.com/jacoelho/py2cpp/internal/cpp/lex"
	"github.com/jacoelho/py2cpp/internal/cpp/report"
)

var errOutputExists = errors.New("output file already exists")

// Translate reads the script at inputPath and writes the translated document
// to outputPath, replacing any existing file.
func Translate(inputPath, outputPath string) error {
	_, err := Run(config.Config{
		InputFile:    inputPath,
		OutputFile:   outputPath,
		ReportFormat: report.FormatNone,
	})
	return err
}

// Run executes one translation and summarizes it.
func Run(cfg config.Config) (report.Summary, error) {
	summary := report.New(cfg.InputFile, cfg.OutputFile)

	tokens, err := readSource(cfg.InputFile)
	if err != nil {
		return report.Summary{}, err
	}

	if cfg.DryRun {
		summary.AddDocument(document.Translate(tokens))
		return summary, nil
	}

	doc, err := writeDocument(cfg.OutputFile, !cfg.NoClobber, tokens)
	if err != nil {
		if !errors.Is(err, errOutputExists) {
			return report.Summary{}, fmt.Errorf("write output file: %w", err)
		}

		summary.AddDocument(document.Translate(tokens))
		summary.AddIssue(report.Issue{
			Code:     diagnostics.CodeOutputExists,
			Stage:    diagnostics.StageFiles,
			Severity: diagnostics.SeverityWarning,
			Path:     cfg.OutputFile,
			Message:  fmt.Sprintf("output file exists and --no-clobber is set: %s", cfg.OutputFile),
		})
		return summary, nil
	}

	summary.Written = true
	summary.AddDocument(doc)
	return summary, nil
}

func readSource(filename string) ([]lex.Token, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer file.Close()

	tokens, err := lex.Read(file)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}

	return tokens, nil
}

func writeDocument(filename string, overwrite bool, tokens []lex.Token) (document.Document, error) {
	if !overwrite {
		if _, err := os.Stat(filename); err == nil {
			return document.Document{}, errOutputExists
		} else if !errors.Is(err, os.ErrNotExist) {
			return document.Document{}, fmt.Errorf("stat output file: %w", err)
		}
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return document.Document{}, fmt.Errorf("create output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return document.Document{}, fmt.Errorf("create file: %w", err)
	}

	doc, err := document.Write(file, tokens)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close file: %w", closeErr)
	}
	if err != nil {
		return document.Document{}, err
	}

	return doc, nil
}
