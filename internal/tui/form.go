package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/quizgame/internal/quiz"
)

// radioRow is the focus index of the correct-answer selector, after the four text fields.
const radioRow = 4

// questionForm is the add-question editor: question text, three options and
// a single correct-answer choice.
type questionForm struct {
	inputs  []textinput.Model
	correct int
	focus   int
}

func newQuestionForm() *questionForm {
	labels := []string{"Enter question", "Option A", "Option B", "Option C"}
	inputs := make([]textinput.Model, 0, len(labels))
	for _, label := range labels {
		inp := textinput.New()
		inp.Prompt = label + ": "
		inp.CharLimit = 200
		inputs = append(inputs, inp)
	}
	return &questionForm{inputs: inputs}
}

// setFocus moves focus to field i, wrapping around the radio row.
func (f *questionForm) setFocus(i int) tea.Cmd {
	n := len(f.inputs) + 1
	f.focus = (i%n + n) % n
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	if f.focus < len(f.inputs) {
		return f.inputs[f.focus].Focus()
	}
	return nil
}

func (f *questionForm) draft() quiz.Draft {
	d := quiz.Draft{Text: f.inputs[0].Value()}
	for i := range d.Options {
		d.Options[i] = f.inputs[i+1].Value()
	}
	d.SetCorrect(f.correct)
	return d
}

// update handles field navigation and typing. Submit and cancel keys are
// handled by the caller.
func (f *questionForm) update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return f.setFocus(f.focus + 1)
		case "shift+tab", "up":
			return f.setFocus(f.focus - 1)
		}
		if f.focus == radioRow {
			switch key.String() {
			case "left", "h":
				f.correct = max(f.correct-1, 0)
			case "right", "l":
				f.correct = min(f.correct+1, quiz.MaxOptions-1)
			case "a", "b", "c":
				f.correct = int(key.String()[0] - 'a')
			}
			return nil
		}
	}
	if f.focus >= len(f.inputs) {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *questionForm) view() string {
	lines := make([]string, 0, len(f.inputs)+1)
	for _, in := range f.inputs {
		lines = append(lines, in.View())
	}
	var radios []string
	for i := 0; i < quiz.MaxOptions; i++ {
		mark := "( )"
		if i == f.correct {
			mark = "(•)"
		}
		radios = append(radios, fmt.Sprintf("%s %s", mark, strings.ToUpper(quiz.OptionLabel(i))))
	}
	cursor := "  "
	if f.focus == radioRow {
		cursor = "▶ "
	}
	lines = append(lines, cursor+"Correct answer: "+strings.Join(radios, "  "))
	return strings.Join(lines, "\n")
}
