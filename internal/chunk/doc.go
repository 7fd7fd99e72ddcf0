// Package chunk splits source text into word-bounded chunks for prompt
// evaluation.
//
// Chunking is total over any string input: there are no error conditions.
// The sequence returned by [Split] is lazy and restartable, cuts only on
// word boundaries, and preserves the input exactly under concatenation,
// including all original whitespace. Words are never split, so a single
// token longer than the budget lands alone in an oversized chunk.
package chunk
