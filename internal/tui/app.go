package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/quizgame/internal/game"
	"github.com/jask/quizgame/internal/quiz"
)

// App renders the navigator's current screen and turns key presses into
// navigator events.
type App struct {
	nav        *game.Navigator
	styles     styles
	welcome    string
	menuCursor int
	form       *questionForm
	status     string
	statusErr  bool
	warning    string
	width      int
	height     int
}

// Options holds presentation settings.
type Options struct {
	Welcome string
	NoColor bool
}

type menuItem struct {
	key   string
	label string
}

var menuItems = []menuItem{
	{key: "s", label: "Start Game"},
	{key: "l", label: "Show Last Score"},
	{key: "b", label: "Go Back"},
	{key: "a", label: "Add Question"},
}

func New(nav *game.Navigator, opts Options) *App {
	welcome := opts.Welcome
	if welcome == "" {
		welcome = "Welcome to the Quiz Game"
	}
	return &App{
		nav:     nav,
		styles:  newStyles(opts.NoColor),
		welcome: welcome,
		width:   80,
		height:  24,
	}
}

func (a *App) Init() tea.Cmd { return nil }

// ReportError shows err until the next key press. It must be called from the
// UI goroutine, for example from a navigator listener.
func (a *App) ReportError(err error) {
	if err == nil {
		return
	}
	a.warning = err.Error()
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(err error) {
	if err == nil {
		a.setStatus("")
		return
	}
	a.status = err.Error()
	a.statusErr = true
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		if m.String() == "ctrl+c" {
			return a, tea.Quit
		}
		a.warning = ""
		switch a.nav.CurrentScreen() {
		case game.Welcome:
			return a.handleWelcomeKey(m)
		case game.Menu:
			return a.handleMenuKey(m)
		case game.Playing:
			return a.handlePlayingKey(m)
		case game.ShowLastScore:
			return a.handleScoreKey(m)
		case game.Results:
			return a.handleResultsKey(m)
		case game.AddQuestion:
			return a.handleAddKey(m)
		}
		return a, nil
	}
	if a.nav.CurrentScreen() == game.AddQuestion && a.form != nil {
		return a, a.form.update(msg)
	}
	return a, nil
}

func (a *App) handleWelcomeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q":
		return a, tea.Quit
	case "enter", " ":
		a.setError(a.nav.ContinueWelcome())
		a.menuCursor = 0
	}
	return a, nil
}

func (a *App) handleMenuKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q":
		return a, tea.Quit
	case "up", "k":
		if a.menuCursor > 0 {
			a.menuCursor--
		}
		return a, nil
	case "down", "j":
		if a.menuCursor < len(menuItems)-1 {
			a.menuCursor++
		}
		return a, nil
	case "enter":
		return a.activateMenu(a.menuCursor)
	}
	for i, item := range menuItems {
		if m.String() == item.key {
			a.menuCursor = i
			return a.activateMenu(i)
		}
	}
	return a, nil
}

func (a *App) activateMenu(i int) (tea.Model, tea.Cmd) {
	switch i {
	case 0:
		if err := a.nav.StartGame(); err != nil {
			if errors.Is(err, quiz.ErrNotEnoughQuestions) {
				a.setError(fmt.Errorf("add at least %d questions to play", quiz.SessionSize))
				return a, nil
			}
			a.setError(err)
			return a, nil
		}
		a.setStatus("")
	case 1:
		a.setError(a.nav.ShowScore())
	case 2:
		a.setError(a.nav.GoBackToWelcome())
	case 3:
		if err := a.nav.OpenAddQuestion(); err != nil {
			a.setError(err)
			return a, nil
		}
		a.setStatus("")
		a.form = newQuestionForm()
		return a, a.form.setFocus(0)
	}
	return a, nil
}

func (a *App) handlePlayingKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, _, ok := a.nav.CurrentQuestion()
	if !ok {
		return a, nil
	}
	switch key := m.String(); key {
	case "enter":
		a.setError(a.nav.ContinueQuestion())
	case "up", "k":
		sel, ok := a.nav.Selected()
		if !ok {
			sel = len(q.Options)
		}
		a.setError(a.nav.SelectOption(max(sel-1, 0)))
	case "down", "j":
		sel, ok := a.nav.Selected()
		if !ok {
			sel = -1
		}
		a.setError(a.nav.SelectOption(min(sel+1, len(q.Options)-1)))
	case "a", "b", "c":
		a.setError(a.nav.SelectOption(int(key[0] - 'a')))
	case "1", "2", "3":
		a.setError(a.nav.SelectOption(int(key[0] - '1')))
	}
	return a, nil
}

func (a *App) handleScoreKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "enter", "esc", "b":
		a.setError(a.nav.BackFromScore())
	}
	return a, nil
}

func (a *App) handleResultsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "enter", "esc", "r":
		a.setError(a.nav.ReturnFromResults())
	}
	return a, nil
}

func (a *App) handleAddKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if _, pending := a.nav.PendingReplace(); pending {
		switch m.String() {
		case "y", "Y":
			if err := a.nav.ConfirmReplace(); err != nil {
				a.setError(err)
				return a, nil
			}
			a.form = nil
			a.setStatus("Question replaced")
		case "n", "N", "esc":
			if err := a.nav.CancelAdd(); err != nil {
				a.setError(err)
				return a, nil
			}
			a.form = nil
			a.setStatus("Replace cancelled")
		}
		return a, nil
	}
	if a.form == nil {
		a.form = newQuestionForm()
	}
	switch m.String() {
	case "esc":
		if err := a.nav.CancelAdd(); err != nil {
			a.setError(err)
			return a, nil
		}
		a.form = nil
		a.setStatus("")
		return a, nil
	case "enter":
		return a.submitForm()
	}
	return a, a.form.update(m)
}

func (a *App) submitForm() (tea.Model, tea.Cmd) {
	d := a.form.draft()
	if !d.Ready() {
		a.setError(quiz.ErrIncompleteDraft)
		return a, nil
	}
	out, err := a.nav.SubmitNewQuestion(d)
	if err != nil {
		a.setError(err)
		return a, nil
	}
	switch {
	case out.NeedsConfirm:
		a.setStatus("")
	case out.Similar != "":
		a.form = nil
		a.setStatus(fmt.Sprintf("Question added (similar to %q)", out.Similar))
	default:
		a.form = nil
		a.setStatus("Question added")
	}
	return a, nil
}
