package quiz

import (
	"errors"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrIncompleteDraft means a form field is still blank.
var ErrIncompleteDraft = errors.New("question text and all three options are required")

// Draft is the add-question form content. Correct is a radio choice over the
// three option slots.
type Draft struct {
	Text    string
	Options [MaxOptions]string
	Correct int
}

// Ready reports whether the text and every option are non-blank.
func (d Draft) Ready() bool {
	if strings.TrimSpace(d.Text) == "" {
		return false
	}
	for _, opt := range d.Options {
		if strings.TrimSpace(opt) == "" {
			return false
		}
	}
	return true
}

// SetCorrect selects the correct slot; values outside 0..2 are clamped.
func (d *Draft) SetCorrect(i int) {
	d.Correct = min(max(i, 0), MaxOptions-1)
}

// Question builds the record the draft describes. Text and options are stored
// as typed so duplicate detection stays an exact match.
func (d Draft) Question() (Question, error) {
	if !d.Ready() {
		return Question{}, ErrIncompleteDraft
	}
	q := NewQuestion(d.Text, d.Options[:], min(max(d.Correct, 0), MaxOptions-1))
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// maxSimilarDistance is the edit distance under which two texts count as similar.
const maxSimilarDistance = 3

// Closest finds the most similar question text that is not an exact match.
// Comparison ignores case and surrounding space.
func Closest(store *Store, text string) (string, bool) {
	target := strings.ToLower(strings.TrimSpace(text))
	if target == "" {
		return "", false
	}
	best, bestDist := "", maxSimilarDistance+1
	for _, q := range store.items {
		if q.Text == text {
			continue
		}
		dist := levenshtein.ComputeDistance(target, strings.ToLower(strings.TrimSpace(q.Text)))
		if dist < bestDist {
			best, bestDist = q.Text, dist
		}
	}
	return best, bestDist <= maxSimilarDistance
}
