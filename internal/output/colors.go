package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for console elements
type ColorScheme struct {
	Heading  *color.Color
	Label    *color.Color
	Value    *color.Color
	Progress *color.Color
	Warning  *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Heading:  color.New(color.FgCyan, color.Bold),
		Label:    color.New(color.FgYellow),
		Value:    color.New(color.FgWhite),
		Progress: color.New(color.FgGreen),
		Warning:  color.New(color.FgYellow, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Heading.DisableColor()
	scheme.Label.DisableColor()
	scheme.Value.DisableColor()
	scheme.Progress.DisableColor()
	scheme.Warning.DisableColor()

	return scheme
}

// WarningIcon returns a warning symbol with appropriate color
func WarningIcon(noColor bool) string {
	if noColor {
		return "⚠"
	}
	return color.New(color.FgYellow).Sprint("⚠")
}
