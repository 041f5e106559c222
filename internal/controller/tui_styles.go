package controller

import (
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/handcheck/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	instructionStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("6")).
				Padding(0, 1)
)

var statusColorMap = map[m.Status]lipgloss.Color{
	m.Pass: lipgloss.Color("2"), // Green
	m.Fail: lipgloss.Color("1"), // Red
	m.Skip: lipgloss.Color("3"), // Yellow
}

func statusStyle(status m.Status) lipgloss.Style {
	color, ok := statusColorMap[status]
	if !ok {
		color = lipgloss.Color("8")
	}

	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

func statusBadge(status m.Status) string {
	icons := map[m.Status]string{m.Pass: "✔", m.Fail: "✘", m.Skip: "–"}

	return statusStyle(status).Render(icons[status] + " " + status.String())
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
