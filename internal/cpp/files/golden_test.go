package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jacoelho/py2cpp/internal/cpp/config"
	"github.com/jacoelho/py2cpp/internal/cpp/report"
)

func TestRunMatchesGoldenOutput(t *testing.T) {
	t.Parallel()

	fixtures := []string{
		"basic",
		"operators",
		"reassign",
	}

	for _, fixture := range fixtures {
		t.Run(fixture, func(t *testing.T) {
			t.Parallel()

			fixtureDir := filepath.Join("testdata", "golden", fixture)
			output := filepath.Join(t.TempDir(), "out.cpp")

			summary, err := Run(config.Config{
				InputFile:    filepath.Join(fixtureDir, "input.py"),
				OutputFile:   output,
				ReportFormat: report.FormatJSON,
			})
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if !summary.Written {
				t.Fatalf("Run() did not write output for fixture %q: %+v", fixture, summary)
			}

			got := readFile(t, output)
			want := readFile(t, filepath.Join(fixtureDir, "expected.cpp"))
			if got != want {
				t.Fatalf("output mismatch for %s\n--- got ---\n%s\n--- want ---\n%s", fixture, got, want)
			}
		})
	}
}

func TestRunProducesByteStableOutput(t *testing.T) {
	t.Parallel()

	input := filepath.Join("testdata", "golden", "reassign", "input.py")
	runOnce := func(t *testing.T, output string) string {
		t.Helper()

		if err := Translate(input, output); err != nil {
			t.Fatalf("Translate() error = %v", err)
		}

		return readFile(t, output)
	}

	first := runOnce(t, filepath.Join(t.TempDir(), "run-1.cpp"))
	second := runOnce(t, filepath.Join(t.TempDir(), "run-2.cpp"))
	if first != second {
		t.Fatalf("outputs differ between runs:\n%s\n---\n%s", first, second)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	return string(payload)
}
