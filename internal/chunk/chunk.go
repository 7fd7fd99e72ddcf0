package chunk

import (
	"iter"
	"unicode"
)

// DefaultMaxWords is the chunk budget used when none is configured.
const DefaultMaxWords = 8000

// Chunk is one word-bounded slice of the input text.
type Chunk struct {
	Index int
	Text  string
	Words int
}

// Split returns a lazy, restartable sequence of chunks. Each chunk holds at
// most maxWords whitespace-delimited words, cuts land only on word
// boundaries, and concatenating the Text of every chunk in order reproduces
// the input byte for byte. A single word longer than the budget is never
// split. An empty input yields no chunks; a whitespace-only input yields one
// zero-word chunk so the reconstruction property holds.
func Split(text string, maxWords int) iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		if text == "" {
			return
		}
		if maxWords <= 0 {
			maxWords = DefaultMaxWords
		}

		idx := 0
		start := 0
		words := 0
		inWord := false

		for i, r := range text {
			if unicode.IsSpace(r) {
				inWord = false
				continue
			}
			if inWord {
				continue
			}
			inWord = true
			if words == maxWords {
				// Cut before this word; trailing whitespace stays
				// with the previous chunk.
				if !yield(Chunk{Index: idx, Text: text[start:i], Words: words}) {
					return
				}
				idx++
				start = i
				words = 1
				continue
			}
			words++
		}

		yield(Chunk{Index: idx, Text: text[start:], Words: words})
	}
}

// SplitAll collects the full chunk sequence into a slice.
func SplitAll(text string, maxWords int) []Chunk {
	var chunks []Chunk
	for c := range Split(text, maxWords) {
		chunks = append(chunks, c)
	}
	return chunks
}

// Count returns the number of chunks Split would produce without
// materializing their text.
func Count(text string, maxWords int) int {
	n := 0
	for range Split(text, maxWords) {
		n++
	}
	return n
}
