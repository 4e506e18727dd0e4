package bot

import "math/rand"

// displayOrder returns the display permutation of n option positions
// for the given question index. The generator is scoped to this call
// and seeded purely by the index, so repeated renders of one question
// keep a stable order while different questions shuffle independently.
func displayOrder(questionIndex, n int) []int {
	r := rand.New(rand.NewSource(shuffleSeed(questionIndex)))
	return r.Perm(n)
}

func shuffleSeed(questionIndex int) int64 {
	return int64(questionIndex)*2654435761 + 1
}
