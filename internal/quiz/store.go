package quiz

import (
	"fmt"
	"math/rand/v2"
)

// Store is the ordered, mutable question bank. It is owned by the single UI
// goroutine and is not safe for concurrent use.
type Store struct {
	items []Question
}

// NewStore returns a store holding a copy of questions in order.
func NewStore(questions []Question) *Store {
	s := &Store{items: make([]Question, 0, len(questions))}
	for _, q := range questions {
		s.Append(q)
	}
	return s
}

// Append adds q to the end.
func (s *Store) Append(q Question) {
	s.items = append(s.items, NewQuestion(q.Text, q.Options, q.Correct))
}

// FindIndexByText returns the index of the first question whose text matches exactly.
func (s *Store) FindIndexByText(text string) (int, bool) {
	for i, q := range s.items {
		if q.Text == text {
			return i, true
		}
	}
	return -1, false
}

// ReplaceAt overwrites the entry at index. An out-of-range index is a
// programming error and panics.
func (s *Store) ReplaceAt(index int, q Question) {
	if index < 0 || index >= len(s.items) {
		panic(fmt.Sprintf("quiz: ReplaceAt index %d out of range [0,%d)", index, len(s.items)))
	}
	s.items[index] = NewQuestion(q.Text, q.Options, q.Correct)
}

// ReplaceByText drops every entry with q's text and appends q, leaving exactly
// one entry with that text. It reports how many entries were removed.
func (s *Store) ReplaceByText(q Question) int {
	kept := s.items[:0]
	removed := 0
	for _, existing := range s.items {
		if existing.Text == q.Text {
			removed++
			continue
		}
		kept = append(kept, existing)
	}
	s.items = kept
	s.Append(q)
	return removed
}

// Len returns the number of questions.
func (s *Store) Len() int { return len(s.items) }

// At returns a copy of the question at index.
func (s *Store) At(index int) Question {
	q := s.items[index]
	return NewQuestion(q.Text, q.Options, q.Correct)
}

// All returns a copy of the bank in insertion order. Options are copied too.
func (s *Store) All() []Question {
	out := make([]Question, 0, len(s.items))
	for _, q := range s.items {
		out = append(out, NewQuestion(q.Text, q.Options, q.Correct))
	}
	return out
}

// Sample draws n distinct questions uniformly at random without replacement.
func (s *Store) Sample(rng *rand.Rand, n int) ([]Question, error) {
	if n > len(s.items) {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrNotEnoughQuestions, n, len(s.items))
	}
	perm := rng.Perm(len(s.items))
	out := make([]Question, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, s.At(idx))
	}
	return out, nil
}
