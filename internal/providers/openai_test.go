package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAI_Evaluate(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("Missing or wrong Authorization header")
		}

		var req openaiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("Messages = %+v, want system+user pair", req.Messages)
		}

		resp := openaiResponse{
			Choices: []openaiChoice{
				{Message: openaiMessage{Role: "assistant", Content: "findings: []"}},
			},
			Usage: openaiUsage{TotalTokens: 50},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	o := &OpenAI{
		apiKey:  "test-key",
		model:   "gpt-4o",
		baseURL: server.URL,
		client:  server.Client(),
	}

	resp, err := o.Evaluate(context.Background(), Request{
		SystemPrompt: "sys",
		UserPrompt:   "user",
		MaxTokens:    10,
	})
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if resp.Content != "findings: []" {
		t.Errorf("Content = %q", resp.Content)
	}
	if resp.TokensUsed != 50 {
		t.Errorf("TokensUsed = %d, want 50", resp.TokensUsed)
	}
	if requests != 1 {
		t.Errorf("issued %d requests, want exactly 1", requests)
	}
}

func TestOpenAI_APIError(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(500)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer server.Close()

	o := &OpenAI{apiKey: "k", model: "m", baseURL: server.URL, client: server.Client()}

	_, err := o.Evaluate(context.Background(), Request{UserPrompt: "x"})
	if !IsAPIError(err) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if IsAuthError(err) {
		t.Error("500 should not classify as auth error")
	}
	// No retry: a server error must not trigger a second request.
	if requests != 1 {
		t.Errorf("issued %d requests, want exactly 1", requests)
	}
}

func TestOpenAI_AuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		w.Write([]byte(`{"error":"bad key"}`))
	}))
	defer server.Close()

	o := &OpenAI{apiKey: "k", model: "m", baseURL: server.URL, client: server.Client()}

	_, err := o.Evaluate(context.Background(), Request{UserPrompt: "x"})
	if !IsAuthError(err) {
		t.Fatalf("err = %v, want auth APIError", err)
	}
}

func TestOpenAI_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // force connection refused

	o := &OpenAI{apiKey: "k", model: "m", baseURL: server.URL, client: &http.Client{}}

	_, err := o.Evaluate(context.Background(), Request{UserPrompt: "x"})
	if !IsTransportError(err) {
		t.Fatalf("err = %v, want TransportError", err)
	}
	if IsAPIError(err) {
		t.Error("transport failure should not classify as APIError")
	}
}

func TestNewOpenAI_RequiresKey(t *testing.T) {
	if _, err := NewOpenAI(Options{Model: "gpt-4o"}); err == nil {
		t.Error("expected error when API key is missing")
	}
}
