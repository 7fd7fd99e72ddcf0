// Package output persists run artifacts and renders the terminal summary.
//
// Each run gets a timestamped directory pair under the configured output
// location: inputs_<ts>/ with the chunk texts sent to the model, and
// outputs_<ts>/ with one YAML artifact per (prompt, chunk) result plus
// combined_results.yaml, the merged report across every prompt and chunk.
package output
