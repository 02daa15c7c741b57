package practice

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/wordiz/internal/vocab"
)

// Shuffler produces uniformly random orderings of learning items.
type Shuffler struct {
	rng *rand.Rand
}

// NewShuffler returns a Shuffler seeded from the clock.
func NewShuffler() *Shuffler {
	return NewSeededShuffler(uint64(time.Now().UnixNano()))
}

// NewSeededShuffler returns a deterministic Shuffler for tests.
func NewSeededShuffler(seed uint64) *Shuffler {
	return &Shuffler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Shuffle returns a permutation of items. The input slice is not modified.
func (s *Shuffler) Shuffle(items []vocab.LearningItem) []vocab.LearningItem {
	out := make([]vocab.LearningItem, len(items))
	copy(out, items)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Batch copies the items of source covered by r and shuffles them.
func (s *Shuffler) Batch(source []vocab.LearningItem, r BatchRange) []vocab.LearningItem {
	lo, hi := r.Bounds()
	return s.Shuffle(source[lo:hi])
}
