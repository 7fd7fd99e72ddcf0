package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	terr := &TransportError{Provider: "openai", Err: errors.New("connection refused")}
	aerr := &APIError{Provider: "openai", StatusCode: 429, Body: "slow down"}
	auth := &APIError{Provider: "anthropic", StatusCode: 401, Body: "bad key"}

	if !IsTransportError(terr) || IsAPIError(terr) {
		t.Error("TransportError misclassified")
	}
	if !IsAPIError(aerr) || IsTransportError(aerr) || IsAuthError(aerr) {
		t.Error("APIError misclassified")
	}
	if !IsAuthError(auth) {
		t.Error("401 APIError not recognized as auth error")
	}
}

func TestErrorClassification_Wrapped(t *testing.T) {
	inner := &APIError{Provider: "openai", StatusCode: 403, Body: "forbidden"}
	wrapped := fmt.Errorf("prompt %q chunk %d: %w", "security-audit", 2, inner)

	if !IsAPIError(wrapped) || !IsAuthError(wrapped) {
		t.Error("wrapped APIError lost its classification")
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	terr := &TransportError{Provider: "ollama", Err: cause}
	if !errors.Is(terr, cause) {
		t.Error("TransportError does not unwrap to its cause")
	}
}
