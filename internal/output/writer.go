package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/flawscan/flawscan/internal/inspect"
)

const combinedFileName = "combined_results.yaml"

// Writer persists run artifacts under a pair of timestamped directories:
// inputs_<ts>/ holds the chunk texts that were sent, outputs_<ts>/ holds one
// YAML file per (prompt, chunk) result plus the combined report.
type Writer struct {
	inputDir  string
	outputDir string
}

// NewWriter creates the run directories under baseDir.
func NewWriter(baseDir string) (*Writer, error) {
	ts := time.Now().Format("20060102_150405")
	w := &Writer{
		inputDir:  filepath.Join(baseDir, "inputs_"+ts),
		outputDir: filepath.Join(baseDir, "outputs_"+ts),
	}
	for _, dir := range []string{w.inputDir, w.outputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating run directory: %w", err)
		}
	}
	return w, nil
}

// InputDir returns the directory holding chunk input artifacts.
func (w *Writer) InputDir() string { return w.inputDir }

// OutputDir returns the directory holding result artifacts.
func (w *Writer) OutputDir() string { return w.outputDir }

// SaveChunkInput stores the text of one chunk exactly as sent.
func (w *Writer) SaveChunkInput(file string, chunkIndex int, text string) error {
	name := fmt.Sprintf("chunk_%d_%s.txt", chunkIndex, stem(file))
	if err := os.WriteFile(filepath.Join(w.inputDir, name), []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing chunk input %s: %w", name, err)
	}
	return nil
}

// SaveIndividual stores one (prompt, chunk) result as a YAML artifact.
func (w *Writer) SaveIndividual(file string, res inspect.Result) error {
	data, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	name := fmt.Sprintf("result_%s_chunk_%d_%s.yaml", stem(file), res.Chunk, res.Prompt)
	if err := os.WriteFile(filepath.Join(w.outputDir, name), data, 0o644); err != nil {
		return fmt.Errorf("writing result %s: %w", name, err)
	}
	return nil
}

// SaveCombined stores the merged report as combined_results.yaml.
func (w *Writer) SaveCombined(report *inspect.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling combined report: %w", err)
	}
	path := filepath.Join(w.outputDir, combinedFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing combined report: %w", err)
	}
	return nil
}

// CombinedPath returns where SaveCombined writes the merged report.
func (w *Writer) CombinedPath() string {
	return filepath.Join(w.outputDir, combinedFileName)
}

// stem flattens a file path into an artifact-name fragment: directory
// separators become underscores and the extension is dropped.
func stem(path string) string {
	base := filepath.ToSlash(filepath.Clean(path))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimLeft(base, "./")
	return strings.NewReplacer("/", "_", " ", "_").Replace(base)
}
