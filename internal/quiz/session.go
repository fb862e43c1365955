package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

const (
	// SessionSize is the number of questions drawn per play.
	SessionSize = 4
	// Unanswered is recorded when the player continues without choosing.
	Unanswered = -1
)

// ErrNotEnoughQuestions means the bank is smaller than SessionSize.
var ErrNotEnoughQuestions = errors.New("not enough questions")

// Session is one play-through: the drawn questions, progress and score.
type Session struct {
	ID        uuid.UUID
	questions []Question
	index     int
	score     int
	answers   []int
}

// StartSession samples SessionSize questions from the store's current contents.
func StartSession(store *Store, rng *rand.Rand) (*Session, error) {
	qs, err := store.Sample(rng, SessionSize)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return &Session{
		ID:        uuid.New(),
		questions: qs,
		answers:   make([]int, 0, len(qs)),
	}, nil
}

// Current returns a copy of the question being asked and its zero-based position.
func (s *Session) Current() (Question, int) {
	q := s.questions[s.index]
	return NewQuestion(q.Text, q.Options, q.Correct), s.index
}

// SubmitAnswer records selected for the current question and scores it.
// Anything outside the option range is stored as Unanswered. It returns false
// when the current question already has an answer.
func (s *Session) SubmitAnswer(selected int) bool {
	if len(s.answers) > s.index {
		return false
	}
	q := s.questions[s.index]
	if selected < 0 || selected >= len(q.Options) {
		selected = Unanswered
	}
	if selected == q.Correct {
		s.score++
	}
	s.answers = append(s.answers, selected)
	return true
}

// Advance moves to the next question. It returns false when the current
// question is the last one, meaning the session is complete.
func (s *Session) Advance() bool {
	if s.index >= len(s.questions)-1 {
		return false
	}
	s.index++
	return true
}

// Complete reports whether every drawn question has an answer.
func (s *Session) Complete() bool { return len(s.answers) == len(s.questions) }

func (s *Session) Score() int { return s.score }

func (s *Session) Total() int { return len(s.questions) }

func (s *Session) Index() int { return s.index }

// Questions returns a copy of the drawn questions in play order.
func (s *Session) Questions() []Question {
	out := make([]Question, 0, len(s.questions))
	for _, q := range s.questions {
		out = append(out, NewQuestion(q.Text, q.Options, q.Correct))
	}
	return out
}

// Answers returns a copy of the recorded answers.
func (s *Session) Answers() []int {
	out := make([]int, len(s.answers))
	copy(out, s.answers)
	return out
}

// Result is one row of the results screen.
type Result struct {
	Question    Question
	Chosen      int
	ChosenText  string
	CorrectText string
	Correct     bool
}

// NotAnswered is shown in place of an option for the Unanswered sentinel.
const NotAnswered = "Not answered"

// Results summarises every drawn question. Questions without a recorded answer
// count as Unanswered.
func (s *Session) Results() []Result {
	out := make([]Result, 0, len(s.questions))
	for i, q := range s.questions {
		chosen := Unanswered
		if i < len(s.answers) {
			chosen = s.answers[i]
		}
		text := NotAnswered
		if chosen >= 0 && chosen < len(q.Options) {
			text = q.Options[chosen]
		}
		out = append(out, Result{
			Question:    NewQuestion(q.Text, q.Options, q.Correct),
			Chosen:      chosen,
			ChosenText:  text,
			CorrectText: q.CorrectText(),
			Correct:     chosen == q.Correct,
		})
	}
	return out
}
