package inspect

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flawscan/flawscan/internal/chunk"
	"github.com/flawscan/flawscan/internal/prompt"
	"github.com/flawscan/flawscan/internal/providers"
	"github.com/flawscan/flawscan/internal/redact"
)

const (
	toolName    = "flawscan"
	toolVersion = "0.1.0"
)

// ResultWriter persists per-call artifacts and the combined report. The
// combined report must reflect every individual result already written when
// SaveCombined is called; no other ordering is required.
type ResultWriter interface {
	SaveChunkInput(file string, chunkIndex int, text string) error
	SaveIndividual(file string, res Result) error
	SaveCombined(report *Report) error
}

// Options configures an Engine.
type Options struct {
	Provider      providers.Evaluator
	Prompts       []prompt.Prompt
	Writer        ResultWriter
	Model         string
	MaxChunkWords int
	RedactSecrets bool
}

// Engine runs every configured prompt over every chunk of each input file,
// one request at a time, and accumulates the combined report. It is not safe
// for concurrent use; processing is deliberately sequential.
type Engine struct {
	opts   Options
	report *Report

	// failed marks prompts whose evaluation hit a provider error; remaining
	// chunks for such a prompt are skipped, results already written stay.
	failed map[string]bool
}

// New creates an Engine. The provider, prompts, and writer are required.
func New(opts Options) (*Engine, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("engine requires a provider")
	}
	if len(opts.Prompts) == 0 {
		return nil, fmt.Errorf("engine requires at least one prompt")
	}
	if opts.Writer == nil {
		return nil, fmt.Errorf("engine requires a result writer")
	}
	if opts.MaxChunkWords <= 0 {
		opts.MaxChunkWords = chunk.DefaultMaxWords
	}
	return &Engine{
		opts: opts,
		report: &Report{
			Tool:     toolName,
			Version:  toolVersion,
			RunID:    uuid.NewString(),
			Provider: opts.Provider.Name(),
			Model:    opts.Model,
			Started:  time.Now().UTC(),
		},
		failed: make(map[string]bool),
	}, nil
}

// Report returns the combined report accumulated so far.
func (e *Engine) Report() *Report { return e.report }

// InspectFile chunks one file's text and evaluates every prompt against every
// chunk. Auth failures abort the run; other provider errors are recorded in
// the report and disable the failing prompt for the remainder of the run.
func (e *Engine) InspectFile(ctx context.Context, path, text string) (*FileReport, error) {
	if e.opts.RedactSecrets {
		text = redact.Secrets(text)
	}

	fr := &FileReport{
		Path:    path,
		Results: make(map[string][]Result, len(e.opts.Prompts)),
	}
	for _, p := range e.opts.Prompts {
		fr.Results[p.Name] = []Result{}
	}
	e.report.Files = append(e.report.Files, fr)

	for c := range chunk.Split(text, e.opts.MaxChunkWords) {
		fr.Chunks++
		if err := e.opts.Writer.SaveChunkInput(path, c.Index, c.Text); err != nil {
			return nil, fmt.Errorf("saving chunk input: %w", err)
		}

		for _, p := range e.opts.Prompts {
			if e.failed[p.Name] {
				continue
			}
			res, err := e.evaluate(ctx, p, c)
			if err != nil {
				return nil, err
			}
			if err := e.opts.Writer.SaveIndividual(path, res); err != nil {
				return nil, fmt.Errorf("saving result: %w", err)
			}
			fr.Results[p.Name] = append(fr.Results[p.Name], res)
		}
	}

	return fr, nil
}

func (e *Engine) evaluate(ctx context.Context, p prompt.Prompt, c chunk.Chunk) (Result, error) {
	res := Result{Prompt: p.Name, Chunk: c.Index}

	req := providers.Request{
		SystemPrompt: p.System,
		UserPrompt:   prompt.BuildUser(p, c.Text),
	}

	llmStart := time.Now()
	resp, err := e.opts.Provider.Evaluate(ctx, req)
	e.report.Timing.LLMMs += time.Since(llmStart).Milliseconds()

	if err != nil {
		if providers.IsAuthError(err) {
			return Result{}, fmt.Errorf("prompt %q chunk %d: %w", p.Name, c.Index, err)
		}
		e.failed[p.Name] = true
		res.Err = err.Error()
		return res, nil
	}

	e.report.TokensUsed += resp.TokensUsed

	content, perr := decodeContent(resp.Content)
	if perr != nil {
		res.Err = fmt.Sprintf("YAML parsing failed: %v", perr)
		res.RawOutput = resp.Content
		return res, nil
	}
	res.Content = content
	return res, nil
}

// Finish stamps the total run time and saves the combined report.
func (e *Engine) Finish() error {
	e.report.Timing.TotalMs = time.Since(e.report.Started).Milliseconds()
	if err := e.opts.Writer.SaveCombined(e.report); err != nil {
		return fmt.Errorf("saving combined report: %w", err)
	}
	return nil
}
