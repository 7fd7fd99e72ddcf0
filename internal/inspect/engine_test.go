package inspect

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/flawscan/flawscan/internal/prompt"
	"github.com/flawscan/flawscan/internal/providers"
)

// fakeEvaluator implements providers.Evaluator for testing. fail maps
// "prompt-substring" to an error returned when the user prompt contains it.
type fakeEvaluator struct {
	content string
	calls   int
	fail    map[string]error
}

func (f *fakeEvaluator) Evaluate(_ context.Context, req providers.Request) (providers.Response, error) {
	f.calls++
	for needle, err := range f.fail {
		if strings.Contains(req.SystemPrompt+req.UserPrompt, needle) {
			return providers.Response{}, err
		}
	}
	return providers.Response{Content: f.content, TokensUsed: 7}, nil
}

func (f *fakeEvaluator) Name() string { return "fake" }

// memWriter records artifacts in memory.
type memWriter struct {
	chunkInputs []string
	individual  []Result
	combined    *Report
	failSave    bool
}

func (m *memWriter) SaveChunkInput(file string, idx int, text string) error {
	m.chunkInputs = append(m.chunkInputs, fmt.Sprintf("%s#%d", file, idx))
	return nil
}

func (m *memWriter) SaveIndividual(file string, res Result) error {
	if m.failSave {
		return fmt.Errorf("disk full")
	}
	m.individual = append(m.individual, res)
	return nil
}

func (m *memWriter) SaveCombined(report *Report) error {
	m.combined = report
	return nil
}

func testPrompts() []prompt.Prompt {
	return []prompt.Prompt{
		{Name: "alpha", System: "alpha-sys", User: "alpha-user"},
		{Name: "beta", System: "beta-sys", User: "beta-user"},
	}
}

func newTestEngine(t *testing.T, ev providers.Evaluator, w ResultWriter, maxWords int) *Engine {
	t.Helper()
	e, err := New(Options{
		Provider:      ev,
		Prompts:       testPrompts(),
		Writer:        w,
		Model:         "test-model",
		MaxChunkWords: maxWords,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestEngine_CombinedReportShape(t *testing.T) {
	ev := &fakeEvaluator{content: "findings: []"}
	w := &memWriter{}
	e := newTestEngine(t, ev, w, 2)

	// 6 words, budget 2 -> 3 chunks
	fr, err := e.InspectFile(context.Background(), "main.go", "a b c d e f")
	if err != nil {
		t.Fatalf("InspectFile: %v", err)
	}

	if fr.Chunks != 3 {
		t.Fatalf("Chunks = %d, want 3", fr.Chunks)
	}
	if len(fr.Results) != 2 {
		t.Fatalf("Results has %d prompt keys, want 2", len(fr.Results))
	}
	for _, name := range []string{"alpha", "beta"} {
		results, ok := fr.Results[name]
		if !ok {
			t.Fatalf("missing prompt key %q", name)
		}
		if len(results) != fr.Chunks {
			t.Errorf("prompt %q has %d results, want %d", name, len(results), fr.Chunks)
		}
		for i, r := range results {
			if r.Chunk != i {
				t.Errorf("prompt %q result %d has Chunk=%d", name, i, r.Chunk)
			}
			if r.Err != "" {
				t.Errorf("prompt %q chunk %d unexpected error: %s", name, i, r.Err)
			}
		}
	}

	// 3 chunks x 2 prompts = 6 calls, 6 individual artifacts, 3 chunk inputs
	if ev.calls != 6 {
		t.Errorf("provider calls = %d, want 6", ev.calls)
	}
	if len(w.individual) != 6 {
		t.Errorf("individual artifacts = %d, want 6", len(w.individual))
	}
	if len(w.chunkInputs) != 3 {
		t.Errorf("chunk inputs = %d, want 3", len(w.chunkInputs))
	}
}

func TestEngine_ContentDecoded(t *testing.T) {
	ev := &fakeEvaluator{content: "findings:\n  - title: SQL injection\n    severity: high\n"}
	w := &memWriter{}
	e := newTestEngine(t, ev, w, 100)

	fr, err := e.InspectFile(context.Background(), "db.go", "query := userInput")
	if err != nil {
		t.Fatal(err)
	}
	res := fr.Results["alpha"][0]
	m, ok := res.Content.(map[string]any)
	if !ok {
		t.Fatalf("Content = %T, want decoded mapping", res.Content)
	}
	if _, ok := m["findings"]; !ok {
		t.Error("decoded content missing findings key")
	}
}

func TestEngine_InvalidYAMLKeepsRawOutput(t *testing.T) {
	ev := &fakeEvaluator{content: "{invalid: yaml"}
	w := &memWriter{}
	e := newTestEngine(t, ev, w, 100)

	fr, err := e.InspectFile(context.Background(), "x.go", "code")
	if err != nil {
		t.Fatal(err)
	}
	res := fr.Results["alpha"][0]
	if res.Err == "" {
		t.Error("expected parse error to be recorded")
	}
	if res.RawOutput != "{invalid: yaml" {
		t.Errorf("RawOutput = %q", res.RawOutput)
	}
	// Parse failures still produce a saved artifact and do not disable the prompt.
	if len(fr.Results["alpha"]) != 1 || len(w.individual) != 2 {
		t.Errorf("parse failure changed artifact accounting: %d results, %d saved", len(fr.Results["alpha"]), len(w.individual))
	}
}

func TestEngine_APIErrorAbortsPrompt(t *testing.T) {
	apiErr := &providers.APIError{Provider: "fake", StatusCode: 500, Body: "boom"}
	ev := &fakeEvaluator{content: "findings: []", fail: map[string]error{"beta": apiErr}}
	w := &memWriter{}
	e := newTestEngine(t, ev, w, 1)

	fr, err := e.InspectFile(context.Background(), "a.go", "one two three")
	if err != nil {
		t.Fatalf("InspectFile: %v", err)
	}

	// alpha ran on all 3 chunks.
	if len(fr.Results["alpha"]) != 3 {
		t.Errorf("alpha results = %d, want 3", len(fr.Results["alpha"]))
	}
	// beta failed on chunk 0 and was not attempted again.
	beta := fr.Results["beta"]
	if len(beta) != 1 {
		t.Fatalf("beta results = %d, want 1 (error entry only)", len(beta))
	}
	if beta[0].Err == "" || beta[0].Chunk != 0 {
		t.Errorf("beta error entry = %+v", beta[0])
	}

	// alpha's previously saved results are intact.
	saved := 0
	for _, r := range w.individual {
		if r.Prompt == "alpha" && r.Err == "" {
			saved++
		}
	}
	if saved != 3 {
		t.Errorf("alpha saved artifacts = %d, want 3", saved)
	}
}

func TestEngine_FailedPromptStaysDisabledAcrossFiles(t *testing.T) {
	apiErr := &providers.APIError{Provider: "fake", StatusCode: 503, Body: "down"}
	ev := &fakeEvaluator{content: "findings: []", fail: map[string]error{"beta": apiErr}}
	w := &memWriter{}
	e := newTestEngine(t, ev, w, 100)

	if _, err := e.InspectFile(context.Background(), "first.go", "code"); err != nil {
		t.Fatal(err)
	}
	fr, err := e.InspectFile(context.Background(), "second.go", "more code")
	if err != nil {
		t.Fatal(err)
	}
	if len(fr.Results["beta"]) != 0 {
		t.Errorf("beta ran on second file after failing: %d results", len(fr.Results["beta"]))
	}
	if len(fr.Results["alpha"]) != 1 {
		t.Errorf("alpha results on second file = %d, want 1", len(fr.Results["alpha"]))
	}
}

func TestEngine_AuthErrorAbortsRun(t *testing.T) {
	authErr := &providers.APIError{Provider: "fake", StatusCode: 401, Body: "bad key"}
	ev := &fakeEvaluator{fail: map[string]error{"alpha": authErr}}
	w := &memWriter{}
	e := newTestEngine(t, ev, w, 100)

	_, err := e.InspectFile(context.Background(), "a.go", "code")
	if !providers.IsAuthError(err) {
		t.Fatalf("err = %v, want auth error surfaced", err)
	}
}

func TestEngine_TransportErrorRecorded(t *testing.T) {
	terr := &providers.TransportError{Provider: "fake", Err: fmt.Errorf("connection refused")}
	ev := &fakeEvaluator{fail: map[string]error{"alpha": terr}}
	w := &memWriter{}
	e := newTestEngine(t, ev, w, 100)

	fr, err := e.InspectFile(context.Background(), "a.go", "code")
	if err != nil {
		t.Fatal(err)
	}
	if len(fr.Results["alpha"]) != 1 || fr.Results["alpha"][0].Err == "" {
		t.Errorf("transport error not recorded: %+v", fr.Results["alpha"])
	}
	if fr.Errors() != 1 {
		t.Errorf("Errors() = %d, want 1", fr.Errors())
	}
}

func TestEngine_EmptyFileYieldsNoResults(t *testing.T) {
	ev := &fakeEvaluator{content: "findings: []"}
	w := &memWriter{}
	e := newTestEngine(t, ev, w, 100)

	fr, err := e.InspectFile(context.Background(), "empty.go", "")
	if err != nil {
		t.Fatal(err)
	}
	if fr.Chunks != 0 || ev.calls != 0 {
		t.Errorf("Chunks = %d, calls = %d, want 0 and 0", fr.Chunks, ev.calls)
	}
}

func TestEngine_Finish(t *testing.T) {
	ev := &fakeEvaluator{content: "findings: []"}
	w := &memWriter{}
	e := newTestEngine(t, ev, w, 100)

	if _, err := e.InspectFile(context.Background(), "a.go", "code here"); err != nil {
		t.Fatal(err)
	}
	if err := e.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if w.combined == nil {
		t.Fatal("combined report not saved")
	}
	if w.combined.RunID == "" || w.combined.Tool != "flawscan" {
		t.Errorf("report metadata = %+v", w.combined)
	}
	if w.combined.Model != "test-model" || w.combined.Provider != "fake" {
		t.Errorf("provider/model metadata = %q/%q", w.combined.Provider, w.combined.Model)
	}
	// The combined report reflects every individual result already written.
	if w.combined.TotalResults() != len(w.individual) {
		t.Errorf("combined has %d results, %d were written", w.combined.TotalResults(), len(w.individual))
	}
	if w.combined.TokensUsed != 7*len(w.individual) {
		t.Errorf("TokensUsed = %d", w.combined.TokensUsed)
	}
}

func TestEngine_WriterFailureSurfaces(t *testing.T) {
	ev := &fakeEvaluator{content: "findings: []"}
	w := &memWriter{failSave: true}
	e := newTestEngine(t, ev, w, 100)

	if _, err := e.InspectFile(context.Background(), "a.go", "code"); err == nil {
		t.Error("expected writer failure to surface")
	}
}

func TestNew_Validation(t *testing.T) {
	ev := &fakeEvaluator{}
	w := &memWriter{}
	if _, err := New(Options{Prompts: testPrompts(), Writer: w}); err == nil {
		t.Error("missing provider accepted")
	}
	if _, err := New(Options{Provider: ev, Writer: w}); err == nil {
		t.Error("missing prompts accepted")
	}
	if _, err := New(Options{Provider: ev, Prompts: testPrompts()}); err == nil {
		t.Error("missing writer accepted")
	}
}
