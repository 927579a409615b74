package prompt

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const Title = "Please Enter Your Username"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
)

func (m *Model) View() string {
	if m.done() {
		return ""
	}

	hint := ""
	if m.showHint {
		hint = hintStyle.Render("A username is required.")
	}

	form := fmt.Sprintf("%s\n\n%s%s\n\n%s\n%s",
		titleStyle.Render(Title),
		labelStyle.Render("Username: "), m.input.View(),
		hint,
		helpStyle.Render("Enter: OK | Esc: Cancel"),
	)

	box := boxStyle.Width(50).Render(form)
	if m.width <= 0 {
		return box
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box)
}
