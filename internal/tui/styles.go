package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	cardStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("212"))
	outcomeWonStyle   = cardStyle.BorderForeground(lipgloss.Color("42"))
	outcomeLostStyle  = cardStyle.BorderForeground(lipgloss.Color("160"))

	buttonStyle     = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230"))
	buttonBusyStyle = buttonStyle.Background(lipgloss.Color("240"))
	pillStyle       = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("57")).Foreground(lipgloss.Color("230"))
	labelStyle      = lipgloss.NewStyle().Width(12).Faint(true)

	badgeStyle        = lipgloss.NewStyle().Padding(0, 1)
	badgeMatchStyle   = badgeStyle.Background(lipgloss.Color("28")).Foreground(lipgloss.Color("230"))
	badgePartialStyle = badgeStyle.Background(lipgloss.Color("136")).Foreground(lipgloss.Color("230"))
	badgeNoMatchStyle = badgeStyle.Background(lipgloss.Color("88")).Foreground(lipgloss.Color("230"))
	badgeHintStyle    = badgeStyle.Background(lipgloss.Color("25")).Foreground(lipgloss.Color("230"))
)
