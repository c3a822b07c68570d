// Package ui provides styled CLI output for tsstrip using lipgloss.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#56C3F4") // Cyan (ts brand-adjacent)
	colorSuccess = lipgloss.Color("#5AF78E")
	colorWarning = lipgloss.Color("#F7DC6F")
	colorError   = lipgloss.Color("#FF6B9D")
	colorMuted   = lipgloss.Color("#6C7086")
	colorText    = lipgloss.Color("#CDD6F4")
)

var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	styleVersion = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	styleFileInput  = lipgloss.NewStyle().Foreground(colorText)
	styleFileOutput = lipgloss.NewStyle().Foreground(colorSuccess)
	styleMuted      = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	styleSuccess = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	styleIndent = lipgloss.NewStyle().PaddingLeft(2)
)

// PrintHeader prints the CLI banner.
func PrintHeader(version string) {
	fmt.Println(styleHeader.Render("tsstrip") + " " + styleVersion.Render("v"+version))
}

// PrintTranspile prints the input → output line for one file.
func PrintTranspile(inputPath, outputPath string) {
	fmt.Printf("  %s %s %s\n", styleFileInput.Render(inputPath), styleMuted.Render("→"), styleFileOutput.Render(outputPath))
}

// PrintSuccess prints a completion summary.
func PrintSuccess(elapsed time.Duration) {
	fmt.Println(styleSuccess.Render("✓ Done") + " " + styleMuted.Render("("+formatDuration(elapsed)+")"))
}

// PrintPanicked reports that the parser panicked and the buffer was left
// untouched.
func PrintPanicked(inputPath string) {
	fmt.Println(styleIndent.Render(styleError.Render("✗ Parse failed: ") + inputPath + " was left unchanged"))
}

// PrintWarning prints a non-fatal diagnostic.
func PrintWarning(msg string) {
	fmt.Println(styleIndent.Render(styleWarning.Render("⚠ ") + msg))
}

// PrintVersionInfo prints version information for the `version` command.
func PrintVersionInfo(version string) {
	fmt.Println(styleHeader.Render("tsstrip"))
	fmt.Println()
	fmt.Printf("  %s %s\n", styleMuted.Render("Version:"), styleSuccess.Render(version))
	fmt.Printf("  %s %s\n", styleMuted.Render("Runtime:"), styleFileInput.Render("Go"))
	fmt.Println()
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
