package main

import "github.com/charmbracelet/lipgloss"

// report styles
var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
	pathStyle    = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935"))
)
