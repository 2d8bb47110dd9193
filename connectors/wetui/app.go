// Package wetui renders a counter presenter in the terminal.
package wetui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/weegigs/wee-counter-go/presenter"
)

type model struct {
	theme     Theme
	presenter *presenter.CounterPresenter
}

func Run(p *presenter.CounterPresenter, options ...tea.ProgramOption) error {
	options = append([]tea.ProgramOption{tea.WithAltScreen()}, options...)
	_, err := tea.NewProgram(newModel(p), options...).Run()
	return err
}

func newModel(p *presenter.CounterPresenter) model {
	return model{theme: DefaultTheme(), presenter: p}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "+", "=", "up", "k":
		m.presenter.Increment()
	case "-", "_", "down", "j":
		m.presenter.Decrement()
	case "r", "0":
		m.presenter.Reset()
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Counter"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Value.Render(fmt.Sprintf("%d", m.presenter.DisplayValue().Get())))
	b.WriteString("\n")
	b.WriteString(m.theme.Status.Render(m.presenter.StatusMessage().Get()))
	b.WriteString("\n\n")
	b.WriteString(m.hint("+", "increment", m.presenter.CanIncrement().Get()))
	b.WriteString("  ")
	b.WriteString(m.hint("-", "decrement", m.presenter.CanDecrement().Get()))
	b.WriteString("  ")
	b.WriteString(m.hint("r", "reset", true))
	b.WriteString("  ")
	b.WriteString(m.hint("q", "quit", true))

	return m.theme.Frame.Render(b.String())
}

func (m model) hint(key string, action string, enabled bool) string {
	if !enabled {
		return m.theme.Disabled.Render(key + " " + action)
	}

	return m.theme.Key.Render(key) + " " + action
}
