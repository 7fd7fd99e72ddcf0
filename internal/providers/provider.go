package providers

import (
	"context"
	"fmt"
)

// Request contains the data sent to an LLM for one evaluation.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
}

// Response contains the raw response from an LLM.
type Response struct {
	Content    string
	TokensUsed int
}

// Evaluator issues exactly one request per call and returns the textual
// result. Failures are a *TransportError when the call cannot complete and a
// *APIError when the service returns a non-success status; callers surface
// both without retrying.
type Evaluator interface {
	Evaluate(ctx context.Context, req Request) (Response, error)
	Name() string
}

// Options carries the provider wiring taken from the run configuration.
type Options struct {
	Model   string
	APIKey  string
	BaseURL string
}

// New creates a provider by name.
func New(name string, opts Options) (Evaluator, error) {
	switch name {
	case "openai":
		return NewOpenAI(opts)
	case "anthropic":
		return NewAnthropic(opts)
	case "ollama", "lmstudio":
		return NewOllama(opts)
	default:
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
}
