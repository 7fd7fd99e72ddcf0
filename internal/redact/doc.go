// Package redact strips likely credential material from source text before
// it is sent to a hosted model. Detection is heuristic: regex patterns for
// common key, token, and private-key formats. Enabled by default, disabled
// with --no-redact.
package redact
