package main

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#ff6b6b")
	colorMuted  = lipgloss.Color("#666666")
	colorError  = lipgloss.Color("#e74c3c")
	colorBar    = lipgloss.Color("#1a1b26")
)

var (
	timeTextStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Background(colorBar).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorBar).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorBar).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Background(colorBar).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorBar)
)
