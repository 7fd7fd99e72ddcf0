package inspect

import "time"

// Result is one model response for a (prompt, chunk) pair. Content holds the
// YAML-decoded response; when the response is not valid YAML, Err and
// RawOutput record what came back instead, as an individual artifact is
// still worth keeping.
type Result struct {
	Prompt    string `yaml:"prompt"`
	Chunk     int    `yaml:"chunk"`
	Content   any    `yaml:"content,omitempty"`
	RawOutput string `yaml:"raw_output,omitempty"`
	Err       string `yaml:"error,omitempty"`
}

// FileReport aggregates every result for one input file. Results maps prompt
// name to per-chunk results in chunk order; a prompt's list stops early when
// a call for it failed.
type FileReport struct {
	Path    string              `yaml:"path"`
	Chunks  int                 `yaml:"chunks"`
	Results map[string][]Result `yaml:"results"`
}

// Errors counts the results recorded with a non-empty Err across all prompts.
func (fr *FileReport) Errors() int {
	n := 0
	for _, results := range fr.Results {
		for _, r := range results {
			if r.Err != "" {
				n++
			}
		}
	}
	return n
}

// Timing contains performance metrics for a run.
type Timing struct {
	LLMMs   int64 `yaml:"llmMs"`
	TotalMs int64 `yaml:"totalMs"`
}

// Report is the combined output across all files, prompts, and chunks.
type Report struct {
	Tool       string        `yaml:"tool"`
	Version    string        `yaml:"version"`
	RunID      string        `yaml:"runId"`
	Provider   string        `yaml:"provider"`
	Model      string        `yaml:"model"`
	Started    time.Time     `yaml:"started"`
	Files      []*FileReport `yaml:"files"`
	TokensUsed int           `yaml:"tokensUsed"`
	Timing     Timing        `yaml:"timing"`
}

// TotalResults counts results across all files and prompts.
func (r *Report) TotalResults() int {
	n := 0
	for _, fr := range r.Files {
		for _, results := range fr.Results {
			n += len(results)
		}
	}
	return n
}

// TotalErrors counts error results across all files.
func (r *Report) TotalErrors() int {
	n := 0
	for _, fr := range r.Files {
		n += fr.Errors()
	}
	return n
}
