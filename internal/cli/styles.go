package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AppName is the title shown in the banner and help output.
const AppName = "rt60"

// Tagline is the one-line description shown under the title.
const Tagline = "Estimate reverberation time (RT60) from room recordings."

// Styles
var (
	// Title style - bold cyan
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(DecayBright).
			MarginBottom(1)

	// Subtitle style - muted gray
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SlateGray).
			Italic(true)

	// Section header style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(DecayMid).
			MarginTop(1)

	// Success message style
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(OKGreen)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorRed)

	// Warning message style
	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(WarnAmber)

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(SlateGray)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(White)

	// Box style for the result summary
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DecayDeep).
			Padding(0, 2)
)

// Output destinations. Tests swap these for buffers.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// PrintBanner prints the application banner
func PrintBanner() {
	fmt.Fprintln(Stdout, TitleStyle.Render(AppName))
	fmt.Fprintln(Stdout, SubtitleStyle.Render(Tagline))
}

// PrintVersion prints version information
func PrintVersion(version string) {
	fmt.Fprintln(Stdout, TitleStyle.Render(AppName))
	fmt.Fprintf(Stdout, "%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Fprintf(Stdout, "%s %s\n", WarningStyle.Render("Warning:"), message)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Fprintf(Stdout, "%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintInfo prints an informational key/value line
func PrintInfo(key, value string) {
	fmt.Fprintf(Stdout, "%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// PrintSection prints a section header
func PrintSection(title string) {
	fmt.Fprintln(Stdout, HeaderStyle.Render(title))
}

// PrintBox prints content in a styled box
func PrintBox(content string) {
	fmt.Fprintln(Stdout, BoxStyle.Render(content))
}

// PrintSummary prints aligned key/value rows in a box.
func PrintSummary(rows [][2]string) {
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}

	var b strings.Builder

	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(KeyStyle.Render(fmt.Sprintf("%-*s  ", width+1, r[0]+":")))
		b.WriteString(ValueStyle.Render(r[1]))
	}

	PrintBox(b.String())
}
