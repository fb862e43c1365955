// Package quiz holds the question bank and the per-play session state.
package quiz

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinOptions and MaxOptions bound the number of choices per question.
	MinOptions = 2
	MaxOptions = 3
)

// ErrInvalidQuestion is returned when a question record breaks its invariants.
var ErrInvalidQuestion = errors.New("invalid question")

// Question is an immutable multiple-choice record. Two questions are the same
// question when their Text matches exactly.
type Question struct {
	Text    string   `json:"text" yaml:"text"`
	Options []string `json:"options" yaml:"options"`
	Correct int      `json:"correct" yaml:"correct"`
}

// NewQuestion copies options so later edits to the caller's slice cannot leak in.
func NewQuestion(text string, options []string, correct int) Question {
	opts := make([]string, len(options))
	copy(opts, options)
	return Question{Text: text, Options: opts, Correct: correct}
}

// Validate checks text, option count, blank options and the correct index.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: blank text", ErrInvalidQuestion)
	}
	if len(q.Options) < MinOptions || len(q.Options) > MaxOptions {
		return fmt.Errorf("%w: %q has %d options, want %d to %d", ErrInvalidQuestion, q.Text, len(q.Options), MinOptions, MaxOptions)
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("%w: %q option %d is blank", ErrInvalidQuestion, q.Text, i)
		}
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fmt.Errorf("%w: %q correct index %d out of range", ErrInvalidQuestion, q.Text, q.Correct)
	}
	return nil
}

// CorrectText returns the text of the correct option.
func (q Question) CorrectText() string {
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return ""
	}
	return q.Options[q.Correct]
}

// Equal compares every field, unlike duplicate detection which only uses Text.
func (q Question) Equal(other Question) bool {
	if q.Text != other.Text || q.Correct != other.Correct || len(q.Options) != len(other.Options) {
		return false
	}
	for i := range q.Options {
		if q.Options[i] != other.Options[i] {
			return false
		}
	}
	return true
}

// OptionLabel maps 0, 1, 2 to a, b, c.
func OptionLabel(i int) string {
	if i < 0 || i >= 26 {
		return ""
	}
	return string(rune('a' + i))
}
