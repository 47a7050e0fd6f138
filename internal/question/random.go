package question

import "math/rand"

// Shuffle returns a uniformly permuted copy of questions. Callers apply it
// before constructing a session; sessions are ordering-agnostic.
func Shuffle(questions []Question) []Question {
	shuffled := make([]Question, len(questions))
	copy(shuffled, questions)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Sample returns n random questions without replacement. When n meets or
// exceeds the set size the whole set is returned shuffled.
func Sample(questions []Question, n int) []Question {
	shuffled := Shuffle(questions)
	if n >= len(shuffled) {
		return shuffled
	}
	if n < 0 {
		n = 0
	}
	return shuffled[:n]
}
