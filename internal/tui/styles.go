package tui

import "github.com/charmbracelet/lipgloss"

// questionColors cycle by question index: light red, green, blue, yellow.
var questionColors = []string{"#E57373", "#81C784", "#64B5F6", "#FFF176"}

type styles struct {
	title     lipgloss.Style
	help      lipgloss.Style
	status    lipgloss.Style
	statusErr lipgloss.Style
	wrong     lipgloss.Style
	modal     lipgloss.Style
	questions []lipgloss.Style
}

func newStyles(noColor bool) styles {
	s := styles{
		title:     lipgloss.NewStyle().Bold(true).Underline(true),
		help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		statusErr: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		wrong:     lipgloss.NewStyle().Bold(true),
		modal:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
	for _, c := range questionColors {
		q := lipgloss.NewStyle().Padding(1, 2)
		if !noColor {
			q = q.Background(lipgloss.Color(c)).Foreground(lipgloss.Color("#212121"))
		}
		s.questions = append(s.questions, q)
	}
	if noColor {
		s.help = lipgloss.NewStyle()
		s.status = lipgloss.NewStyle()
		s.statusErr = lipgloss.NewStyle().Bold(true)
	}
	return s
}

func (s styles) question(index int) lipgloss.Style {
	return s.questions[index%len(s.questions)]
}
