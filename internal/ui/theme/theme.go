package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Success   = lipgloss.Color("#22C55E") // Green
	Text      = lipgloss.Color("#F8FAFC") // White
)

// Typography
var (
	// Title marks a top-level block such as the composite header.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	// Heading marks a single generator's block.
	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Value = lipgloss.NewStyle().
		Foreground(Text)
)

// States
var (
	Done = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)
)
