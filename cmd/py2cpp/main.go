package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/py2cpp/internal/cpp/config"
	"github.com/jacoelho/py2cpp/internal/cpp/files"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			fmt.Fprintln(stdout, config.Usage())
			return 0
		}

		fmt.Fprintf(stderr, "Error: %v\n\n%s\n", err, config.Usage())
		return 1
	}

	summary, err := files.Run(*cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := summary.Write(stdout, cfg.ReportFormat); err != nil {
		fmt.Fprintf(stderr, "Error: failed to write report: %v\n", err)
		return 1
	}

	return 0
}
