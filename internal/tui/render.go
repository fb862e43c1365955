package tui

import (
	"fmt"
	"strings"

	"github.com/jask/quizgame/internal/game"
	"github.com/jask/quizgame/internal/quiz"
)

func (a *App) View() string {
	var body string
	switch a.nav.CurrentScreen() {
	case game.Welcome:
		body = a.renderWelcome()
	case game.Menu:
		body = a.renderMenu()
	case game.Playing:
		body = a.renderPlaying()
	case game.ShowLastScore:
		body = a.renderLastScore()
	case game.Results:
		body = a.renderResults()
	case game.AddQuestion:
		body = a.renderAddQuestion()
	}
	if a.status != "" {
		style := a.styles.status
		if a.statusErr {
			style = a.styles.statusErr
		}
		body += "\n\n" + style.Render(a.status)
	}
	if a.warning != "" {
		body += "\n" + a.styles.statusErr.Render("storage: "+a.warning)
	}
	return body
}

func (a *App) renderWelcome() string {
	return fmt.Sprintf("%s\n\n%s", a.styles.title.Render(a.welcome), a.styles.help.Render("[enter] OK  [q] Quit"))
}

func (a *App) renderMenu() string {
	out := a.styles.title.Render("Menu") + "\n"
	for i, item := range menuItems {
		marker := " "
		if i == a.menuCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s [%s] %s\n", marker, item.key, item.label)
	}
	out += "\n" + a.styles.help.Render("[↑/↓] Move  [enter] Select  [q] Quit")
	return out
}

func (a *App) renderPlaying() string {
	q, idx, ok := a.nav.CurrentQuestion()
	if !ok {
		return ""
	}
	sel, picked := a.nav.Selected()
	lines := []string{
		fmt.Sprintf("Question %d of %d", idx+1, a.nav.SessionTotal()),
		"",
		fmt.Sprintf("%d: %s", idx+1, q.Text),
	}
	for i, opt := range q.Options {
		marker := "  "
		if picked && i == sel {
			marker = "▶ "
		}
		lines = append(lines, fmt.Sprintf("%s%s. %s", marker, quiz.OptionLabel(i), opt))
	}
	box := a.styles.question(idx).Width(max(a.width-4, 20)).Render(strings.Join(lines, "\n"))
	return box + "\n" + a.styles.help.Render("[a/b/c] Choose  [enter] OK")
}

func (a *App) renderLastScore() string {
	return fmt.Sprintf("%s\nLast Score: %d\n\n%s",
		a.styles.title.Render("Last Score"), a.nav.LastScore(), a.styles.help.Render("[enter] Back"))
}

func (a *App) renderResults() string {
	out := a.styles.title.Render("Results") + "\n"
	out += fmt.Sprintf("Your Score: %d\n", a.nav.SessionScore())
	for i, r := range a.nav.ResultsSummary() {
		feedback := "Correct!"
		if !r.Correct {
			feedback = "Wrong! Correct Answer: " + r.CorrectText
		}
		line := fmt.Sprintf("%d. %s - Your Answer: %s - %s", i+1, r.Question.Text, r.ChosenText, feedback)
		if !r.Correct {
			line = a.styles.wrong.Render(line)
		}
		out += line + "\n"
	}
	out += "\n" + a.styles.help.Render("[enter] Return")
	return out
}

func (a *App) renderAddQuestion() string {
	out := a.styles.title.Render("Add Question") + "\n"
	if a.form != nil {
		out += a.form.view() + "\n"
	}
	out += "\n" + a.styles.help.Render("[tab] Next field  [←/→] Correct answer  [enter] Add Question  [esc] Cancel")
	if _, pending := a.nav.PendingReplace(); pending {
		out += "\n\n" + a.styles.modal.Render("Confirm Replace\nThis question already exists. Do you want to replace it?\n[y] Replace  [n] Cancel")
	}
	return out
}
