package tui

import "github.com/charmbracelet/lipgloss"

var (
	spinnerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	installingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	installedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	subtleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
