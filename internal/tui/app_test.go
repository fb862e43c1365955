package tui

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/quizgame/internal/game"
	"github.com/jask/quizgame/internal/quiz"
)

func testKey(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press applies a key and discards the returned command; cursor blink
// commands would otherwise tick forever.
func press(t *testing.T, a *App, keys ...string) *App {
	t.Helper()
	for _, k := range keys {
		next, _ := a.Update(testKey(k))
		got, ok := next.(*App)
		require.True(t, ok, "Update returned %T", next)
		a = got
	}
	return a
}

func typeText(t *testing.T, a *App, s string) *App {
	t.Helper()
	for _, r := range s {
		a = press(t, a, string(r))
	}
	return a
}

func newTestApp(t *testing.T, questions []quiz.Question) *App {
	t.Helper()
	nav := game.New(quiz.NewStore(questions), rand.New(rand.NewPCG(7, 11)))
	return New(nav, Options{NoColor: true})
}

func TestWelcomeToMenu(t *testing.T) {
	a := newTestApp(t, quiz.Seed())
	require.Contains(t, a.View(), "Welcome to the Quiz Game")
	a = press(t, a, "enter")
	require.Equal(t, game.Menu, a.nav.CurrentScreen())
	view := a.View()
	for _, label := range []string{"Start Game", "Show Last Score", "Go Back", "Add Question"} {
		require.Contains(t, view, label)
	}
}

func TestQuitKeys(t *testing.T) {
	a := newTestApp(t, quiz.Seed())
	_, cmd := a.Update(testKey("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	a = press(t, a, "enter", "s")
	_, cmd = a.Update(testKey("ctrl+c"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMenuCursorNavigation(t *testing.T) {
	a := newTestApp(t, quiz.Seed())
	a = press(t, a, "enter", "down", "enter")
	require.Equal(t, game.ShowLastScore, a.nav.CurrentScreen())
	require.Contains(t, a.View(), "Last Score: 0")
	a = press(t, a, "enter")
	require.Equal(t, game.Menu, a.nav.CurrentScreen())
	a = press(t, a, "b")
	require.Equal(t, game.Welcome, a.nav.CurrentScreen())
}

func TestPlayAllCorrectShowsScore(t *testing.T) {
	a := newTestApp(t, quiz.Seed())
	a = press(t, a, "enter", "s")
	require.Equal(t, game.Playing, a.nav.CurrentScreen())

	for i := 0; i < quiz.SessionSize; i++ {
		q, idx, ok := a.nav.CurrentQuestion()
		require.True(t, ok)
		require.Equal(t, i, idx)
		require.Contains(t, a.View(), q.Text)
		a = press(t, a, quiz.OptionLabel(q.Correct))
		sel, picked := a.nav.Selected()
		require.True(t, picked)
		require.Equal(t, q.Correct, sel)
		a = press(t, a, "enter")
	}

	require.Equal(t, game.Results, a.nav.CurrentScreen())
	view := a.View()
	require.Contains(t, view, "Your Score: 4")
	require.Equal(t, quiz.SessionSize, strings.Count(view, "Correct!"))
	require.NotContains(t, view, "Wrong!")

	a = press(t, a, "enter", "l")
	require.Contains(t, a.View(), "Last Score: 4")
}

func TestUnansweredQuestionsAreWrong(t *testing.T) {
	a := newTestApp(t, quiz.Seed())
	a = press(t, a, "enter", "s", "enter", "enter", "enter", "enter")
	require.Equal(t, game.Results, a.nav.CurrentScreen())
	view := a.View()
	require.Contains(t, view, "Your Score: 0")
	require.Equal(t, quiz.SessionSize, strings.Count(view, "Your Answer: Not answered - Wrong! Correct Answer:"))
}

func TestStartWithTooFewQuestionsStaysOnMenu(t *testing.T) {
	a := newTestApp(t, quiz.Seed()[:2])
	a = press(t, a, "enter", "s")
	require.Equal(t, game.Menu, a.nav.CurrentScreen())
	require.Contains(t, a.View(), "add at least 4 questions to play")
}

func fillForm(t *testing.T, a *App, text string, options [3]string) *App {
	t.Helper()
	a = typeText(t, a, text)
	for _, opt := range options {
		a = press(t, a, "tab")
		a = typeText(t, a, opt)
	}
	return a
}

func TestAddQuestionAppends(t *testing.T) {
	a := newTestApp(t, quiz.Seed())
	a = press(t, a, "enter", "a")
	require.Equal(t, game.AddQuestion, a.nav.CurrentScreen())
	require.Contains(t, a.View(), "Add Question")

	a = fillForm(t, a, "Largest ocean?", [3]string{"Atlantic", "Pacific", "Indian"})
	a = press(t, a, "tab", "right")
	a = press(t, a, "enter")

	require.Equal(t, game.Menu, a.nav.CurrentScreen())
	require.Contains(t, a.View(), "Question added")
	store := a.nav.Store()
	require.Equal(t, 21, store.Len())
	got := store.At(20)
	require.Equal(t, "Largest ocean?", got.Text)
	require.Equal(t, []string{"Atlantic", "Pacific", "Indian"}, got.Options)
	require.Equal(t, 1, got.Correct)
}

func TestAddQuestionIncompleteIsIgnored(t *testing.T) {
	a := newTestApp(t, quiz.Seed())
	a = press(t, a, "enter", "a")
	a = typeText(t, a, "Only text")
	a = press(t, a, "enter")
	require.Equal(t, game.AddQuestion, a.nav.CurrentScreen())
	require.Equal(t, 20, a.nav.Store().Len())

	a = press(t, a, "esc")
	require.Equal(t, game.Menu, a.nav.CurrentScreen())
	require.Equal(t, 20, a.nav.Store().Len())
}

func TestAddDuplicateConfirmReplace(t *testing.T) {
	seed := quiz.Seed()
	a := newTestApp(t, seed)
	a = press(t, a, "enter", "a")
	a = fillForm(t, a, seed[0].Text, [3]string{"X", "Y", "Z"})
	a = press(t, a, "enter")

	require.Equal(t, game.AddQuestion, a.nav.CurrentScreen())
	require.Contains(t, a.View(), "This question already exists. Do you want to replace it?")

	a = press(t, a, "y")
	require.Equal(t, game.Menu, a.nav.CurrentScreen())
	store := a.nav.Store()
	require.Equal(t, 20, store.Len())
	i, ok := store.FindIndexByText(seed[0].Text)
	require.True(t, ok)
	require.Equal(t, []string{"X", "Y", "Z"}, store.At(i).Options)
}

func TestAddDuplicateCancel(t *testing.T) {
	seed := quiz.Seed()
	a := newTestApp(t, seed)
	a = press(t, a, "enter", "a")
	a = fillForm(t, a, seed[0].Text, [3]string{"X", "Y", "Z"})
	a = press(t, a, "enter", "n")

	require.Equal(t, game.Menu, a.nav.CurrentScreen())
	require.Equal(t, seed, a.nav.Store().All())
}

func TestReportErrorClearsOnNextKey(t *testing.T) {
	a := newTestApp(t, quiz.Seed())
	a.ReportError(errors.New("disk full"))
	require.Contains(t, a.View(), "storage: disk full")
	a = press(t, a, "enter")
	require.NotContains(t, a.View(), "disk full")
}
