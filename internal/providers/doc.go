// Package providers implements the Evaluator interface for each supported
// LLM provider.
//
// Supported providers: OpenAI (GPT) and OpenAI-compatible endpoints,
// Anthropic (Claude), and Ollama / LM Studio for local models.
//
// Each Evaluate call issues exactly one HTTP request. There is no retry or
// back-off: a failed network call surfaces as *TransportError and a
// non-success status as *APIError, and the caller decides what to abort.
// Base URLs are injectable so tests can redirect calls to local httptest
// servers without making live API requests.
//
// Use [New] to obtain an Evaluator by provider name.
package providers
