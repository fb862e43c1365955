package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jask/quizgame/internal/quiz"
)

// ErrInvalidTransition is returned for an event the current screen does not accept.
var ErrInvalidTransition = errors.New("invalid transition")

// noSelection marks that no option has been picked for the current question.
const noSelection = quiz.Unanswered

// Navigator is the screen state machine. All methods run on the UI goroutine;
// it is not safe for concurrent use.
type Navigator struct {
	store     *quiz.Store
	rng       *rand.Rand
	screen    Screen
	session   *quiz.Session
	selected  int
	lastScore int
	pending   *quiz.Question
	listeners []Listener
}

// New starts on the Welcome screen over store. rng drives question sampling.
func New(store *quiz.Store, rng *rand.Rand) *Navigator {
	return &Navigator{
		store:    store,
		rng:      rng,
		screen:   Welcome,
		selected: noSelection,
	}
}

// Subscribe registers l for every subsequent change.
func (n *Navigator) Subscribe(l Listener) {
	if l == nil {
		return
	}
	n.listeners = append(n.listeners, l)
}

// RestoreLastScore sets the score shown before any session has finished in
// this process, such as one loaded from storage.
func (n *Navigator) RestoreLastScore(score int) {
	n.lastScore = max(score, 0)
}

func (n *Navigator) CurrentScreen() Screen { return n.screen }

func (n *Navigator) Store() *quiz.Store { return n.store }

func (n *Navigator) LastScore() int { return n.lastScore }

// SessionScore is the running score of the current or most recent session.
func (n *Navigator) SessionScore() int {
	if n.session == nil {
		return 0
	}
	return n.session.Score()
}

// CurrentQuestion returns the question on screen while Playing.
func (n *Navigator) CurrentQuestion() (quiz.Question, int, bool) {
	if n.screen != Playing || n.session == nil {
		return quiz.Question{}, 0, false
	}
	q, idx := n.session.Current()
	return q, idx, true
}

// SessionTotal is the number of questions in the current session.
func (n *Navigator) SessionTotal() int {
	if n.session == nil {
		return 0
	}
	return n.session.Total()
}

// Selected returns the option picked for the current question, if any.
func (n *Navigator) Selected() (int, bool) {
	return n.selected, n.selected != noSelection
}

// ResultsSummary lists per-question outcomes of the most recent session.
func (n *Navigator) ResultsSummary() []quiz.Result {
	if n.session == nil {
		return nil
	}
	return n.session.Results()
}

// PendingReplace returns the question awaiting a replace decision.
func (n *Navigator) PendingReplace() (quiz.Question, bool) {
	if n.pending == nil {
		return quiz.Question{}, false
	}
	return *n.pending, true
}

func (n *Navigator) expect(ev Event, screens ...Screen) error {
	for _, s := range screens {
		if n.screen == s {
			return nil
		}
	}
	return fmt.Errorf("%w: %s on %s screen", ErrInvalidTransition, ev, n.screen)
}

func (n *Navigator) move(c Change) {
	c.From = n.screen
	n.screen = c.To
	for _, l := range n.listeners {
		l.Notify(c)
	}
}

func (n *Navigator) ContinueWelcome() error {
	if err := n.expect(EventContinueWelcome, Welcome); err != nil {
		return err
	}
	n.move(Change{Event: EventContinueWelcome, To: Menu})
	return nil
}

// StartGame draws a fresh session. With too few questions it stays on Menu
// and returns an error wrapping quiz.ErrNotEnoughQuestions.
func (n *Navigator) StartGame() error {
	if err := n.expect(EventStartGame, Menu); err != nil {
		return err
	}
	sess, err := quiz.StartSession(n.store, n.rng)
	if err != nil {
		return err
	}
	n.session = sess
	n.selected = noSelection
	n.move(Change{Event: EventStartGame, To: Playing})
	return nil
}

func (n *Navigator) ShowScore() error {
	if err := n.expect(EventShowScore, Menu); err != nil {
		return err
	}
	n.move(Change{Event: EventShowScore, To: ShowLastScore})
	return nil
}

func (n *Navigator) GoBackToWelcome() error {
	if err := n.expect(EventGoBackToWelcome, Menu); err != nil {
		return err
	}
	n.move(Change{Event: EventGoBackToWelcome, To: Welcome})
	return nil
}

func (n *Navigator) OpenAddQuestion() error {
	if err := n.expect(EventOpenAddQuestion, Menu); err != nil {
		return err
	}
	n.pending = nil
	n.move(Change{Event: EventOpenAddQuestion, To: AddQuestion})
	return nil
}

// SelectOption marks option i for the current question. Indices outside the
// question's options are ignored.
func (n *Navigator) SelectOption(i int) error {
	if err := n.expect(EventSelectOption, Playing); err != nil {
		return err
	}
	q, _ := n.session.Current()
	if i < 0 || i >= len(q.Options) {
		return nil
	}
	n.selected = i
	n.move(Change{Event: EventSelectOption, To: Playing})
	return nil
}

// ContinueQuestion records the selection, or the unanswered sentinel, then
// moves to the next question or to Results after the last one.
func (n *Navigator) ContinueQuestion() error {
	if err := n.expect(EventContinueQuestion, Playing); err != nil {
		return err
	}
	n.session.SubmitAnswer(n.selected)
	n.selected = noSelection
	if n.session.Advance() {
		n.move(Change{Event: EventContinueQuestion, To: Playing})
		return nil
	}
	n.lastScore = n.session.Score()
	n.move(Change{
		Event: EventContinueQuestion,
		To:    Results,
		Finished: &SessionSummary{
			ID:    n.session.ID,
			Score: n.session.Score(),
			Total: n.session.Total(),
		},
	})
	return nil
}

func (n *Navigator) BackFromScore() error {
	if err := n.expect(EventBackFromScore, ShowLastScore); err != nil {
		return err
	}
	n.move(Change{Event: EventBackFromScore, To: Menu})
	return nil
}

func (n *Navigator) ReturnFromResults() error {
	if err := n.expect(EventReturnFromResults, Results); err != nil {
		return err
	}
	n.move(Change{Event: EventReturnFromResults, To: Menu})
	return nil
}

// SubmitOutcome tells the caller what a submit did.
type SubmitOutcome struct {
	Added        bool
	NeedsConfirm bool
	// Similar is the text of a near-duplicate question, if one exists.
	Similar string
}

// SubmitNewQuestion adds the drafted question, or asks for confirmation when
// a question with the same text already exists. The confirmation must be
// resolved with ConfirmReplace or CancelAdd.
func (n *Navigator) SubmitNewQuestion(d quiz.Draft) (SubmitOutcome, error) {
	if err := n.expect(EventSubmitQuestion, AddQuestion); err != nil {
		return SubmitOutcome{}, err
	}
	if n.pending != nil {
		return SubmitOutcome{}, fmt.Errorf("%w: replace confirmation pending", ErrInvalidTransition)
	}
	q, err := d.Question()
	if err != nil {
		return SubmitOutcome{}, err
	}
	if _, exists := n.store.FindIndexByText(q.Text); exists {
		n.pending = &q
		return SubmitOutcome{NeedsConfirm: true}, nil
	}
	similar, _ := quiz.Closest(n.store, q.Text)
	n.store.Append(q)
	n.move(Change{Event: EventSubmitQuestion, To: Menu, Store: n.store.All()})
	return SubmitOutcome{Added: true, Similar: similar}, nil
}

// ConfirmReplace swaps every question sharing the pending text for the new one.
func (n *Navigator) ConfirmReplace() error {
	if err := n.expect(EventConfirmReplace, AddQuestion); err != nil {
		return err
	}
	if n.pending == nil {
		return fmt.Errorf("%w: no replace pending", ErrInvalidTransition)
	}
	n.store.ReplaceByText(*n.pending)
	n.pending = nil
	n.move(Change{Event: EventConfirmReplace, To: Menu, Store: n.store.All()})
	return nil
}

// CancelAdd discards the draft, including any pending replacement.
func (n *Navigator) CancelAdd() error {
	if err := n.expect(EventCancelAdd, AddQuestion); err != nil {
		return err
	}
	n.pending = nil
	n.move(Change{Event: EventCancelAdd, To: Menu})
	return nil
}
