// Package inspect contains the engine that drives a flawscan run.
//
// For each input file the engine chunks the (optionally redacted) text under
// the word budget, then walks chunks in order evaluating every configured
// prompt against each one, a single blocking request at a time. Individual
// results are persisted as they arrive and folded into the combined Report,
// keyed by prompt name with per-chunk results in chunk order.
//
// A provider error on one (prompt, chunk) call is recorded and disables that
// prompt for the rest of the run; results already on disk are never touched.
// Rejected credentials abort the whole run instead, since every further call
// would fail the same way.
package inspect
