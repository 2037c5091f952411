package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Lipgloss Styles
var (
	docStyle   = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	// 字母池中的字母块
	tileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	// 光标所在的字母块
	tileCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("63")).
			Bold(true).
			Padding(0, 1)

	// 手牌字母块
	bankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228")).
			Background(lipgloss.Color("236")).
			Bold(true).
			Padding(0, 1)

	hostStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	playerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	flashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("120"))
)
