// Package cli wires the flawscan command tree: scan, prompts, config, and
// version, with deterministic exit codes for scripting.
package cli
