package engine

import "math/rand"

var sequenceLetters = []byte{'w', 'a', 's', 'd'}

// DefaultShuffleLength is the sequence-length heuristic used when the caller
// does not specify one.
func DefaultShuffleLength(rows, cols int) int {
	return rows * cols * 10
}

// RandomSequence generates a move-letter string of the given length, each
// letter an independent uniform choice among the four tokens. The random
// source is injected so tests can supply deterministic sequences.
func RandomSequence(rng *rand.Rand, length int) string {
	if length <= 0 {
		return ""
	}

	buf := make([]byte, length)
	for i := range buf {
		buf[i] = sequenceLetters[rng.Intn(len(sequenceLetters))]
	}
	return string(buf)
}
