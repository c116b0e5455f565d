package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette — matches the blue/slate scheme of the exported documents
var (
	Primary = lipgloss.Color("#1D4ED8") // Blue, same as the answer key color
	Accent  = lipgloss.Color("#F97316") // Orange
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	BgCard  = lipgloss.Color("#1E293B") // Dark Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Align(lipgloss.Center)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text)

	bodyStyle = lipgloss.NewStyle().
			Foreground(Text)

	dimStyle = lipgloss.NewStyle().
			Foreground(TextDim)

	answerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	noticeStyle = lipgloss.NewStyle().
			Foreground(Success)

	errorStyle = lipgloss.NewStyle().
			Foreground(Error)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text).
			Background(Primary).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(TextDim).
				Background(BgCard).
				Padding(0, 2)
)
