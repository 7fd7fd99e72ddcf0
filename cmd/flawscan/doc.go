// Flawscan is a CLI for LLM-assisted security review of source code.
//
// It splits each input file into word-bounded chunks, runs every configured
// review prompt against every chunk through a hosted model, and writes one
// YAML artifact per (prompt, chunk) result plus a combined report for the
// whole run.
//
// Usage:
//
//	flawscan scan ./src              # inspect a directory recursively
//	flawscan scan main.go util.go    # inspect specific files
//	flawscan scan                    # use configured inputSources, or ask
//	flawscan prompts                 # list the effective prompt catalog
//	flawscan config init             # write a default flawscan.yaml
//
// API keys are read from OPENAI_API_KEY or ANTHROPIC_API_KEY, optionally via
// a .env file in the working directory.
package main
