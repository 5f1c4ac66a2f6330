package main

import "github.com/charmbracelet/lipgloss"

// GitHub terminal light theme palette.
var (
	colorMuted   = lipgloss.Color("#656d76")
	colorAccent  = lipgloss.Color("#0969da")
	colorError   = lipgloss.Color("#cf222e")
	colorSuccess = lipgloss.Color("#1a7f37")
	colorWarning = lipgloss.Color("#9a6700")
)

var (
	userPrefixStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	assistantPrefixStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	dimStyle             = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle           = lipgloss.NewStyle().Foreground(colorError)
	successStyle         = lipgloss.NewStyle().Foreground(colorSuccess)
	warnStyle            = lipgloss.NewStyle().Foreground(colorWarning)

	bannerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent)
)
