package cli

import "github.com/charmbracelet/lipgloss"

// Shared palette for help and result output
var (
	// Decay ramp, loud to quiet
	DecayBright = lipgloss.Color("#7FDBFF") // Pale cyan
	DecayMid    = lipgloss.Color("#39A0ED") // Sky blue
	DecayDeep   = lipgloss.Color("#1F5FAD") // Deep blue

	// Status colours
	ErrorRed  = lipgloss.Color("#E0464A")
	WarnAmber = lipgloss.Color("#FFB000")
	OKGreen   = lipgloss.Color("#2ECC71")

	// Subtle text
	SlateGray = lipgloss.Color("#8A94A6")
	White     = lipgloss.Color("#FFFFFF")
)
