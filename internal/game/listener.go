package game

import (
	"github.com/google/uuid"

	"github.com/jask/quizgame/internal/quiz"
)

// Change describes one applied event. Store is set when the bank was mutated
// and Finished when a session reached the results screen.
type Change struct {
	Event    Event
	From     Screen
	To       Screen
	Store    []quiz.Question
	Finished *SessionSummary
}

// SessionSummary is reported once per finished session.
type SessionSummary struct {
	ID    uuid.UUID
	Score int
	Total int
}

// Listener is told about every successful event, in order, after the state
// has been updated.
type Listener interface {
	Notify(c Change)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(c Change)

func (f ListenerFunc) Notify(c Change) { f(c) }
