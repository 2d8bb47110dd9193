package wetui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Value    lipgloss.Style
	Status   lipgloss.Style
	Key      lipgloss.Style
	Disabled lipgloss.Style
	Frame    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Value:    lipgloss.NewStyle().Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder()),
		Status:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244")),
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Disabled: lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Frame:    lipgloss.NewStyle().Padding(1, 2),
	}
}
