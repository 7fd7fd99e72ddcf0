package redact

import "regexp"

const placeholder = "[REDACTED]"

// secretPatterns are regex heuristics for credential material that has no
// business reaching a hosted model. Order does not matter; every pattern is
// applied to the whole text.
var secretPatterns = []*regexp.Regexp{
	// key/secret/token/password assignments
	regexp.MustCompile(`(?i)(api[_-]?key|apikey|api[_-]?secret|secret|token|password|passwd|credential)\s*[:=]\s*["']?([A-Za-z0-9/+=_.-]{8,})["']?`),
	// AWS access key IDs and secret keys
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	regexp.MustCompile(`(?i)(aws[_-]?secret[_-]?access[_-]?key)\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`),
	// Bearer tokens
	regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`),
	// JWTs
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
	// private key blocks
	regexp.MustCompile(`-----BEGIN\s+(RSA\s+|EC\s+|OPENSSH\s+)?PRIVATE KEY-----`),
	// GitHub and Slack tokens
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`),
	regexp.MustCompile(`xox[bporas]-[A-Za-z0-9-]{10,}`),
	// Anthropic and OpenAI API keys
	regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`),
	regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`),
}

// Secrets replaces detected secrets in text with [REDACTED]. The chunker
// runs after redaction, so replacement never breaks chunk reconstruction.
func Secrets(text string) string {
	result := text
	for _, pat := range secretPatterns {
		result = pat.ReplaceAllString(result, placeholder)
	}
	return result
}
