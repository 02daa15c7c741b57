package practice

import (
	"fmt"
	"time"

	"github.com/abhisek/wordiz/internal/vocab"
)

// makeItems returns n distinct non-noun items w1..wn.
func makeItems(n int) []vocab.LearningItem {
	items := make([]vocab.LearningItem, n)
	for i := range items {
		items[i] = vocab.LearningItem{
			Term:     fmt.Sprintf("w%d", i+1),
			Category: "VERB",
			Class:    vocab.ClassVerb,
			Gloss:    fmt.Sprintf("gloss %d", i+1),
		}
	}
	return items
}

func newTestEngine(n int) *Engine {
	return NewEngine(makeItems(n), Options{
		AutoAdvance: time.Hour,
		Shuffler:    NewSeededShuffler(42),
	})
}

// termCounts returns a multiset of the terms in items.
func termCounts(items []vocab.LearningItem) map[string]int {
	m := make(map[string]int)
	for _, it := range items {
		m[it.Term]++
	}
	return m
}
