package style

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatText renders plain text output without any styling
	FormatText Format = iota
	// FormatTerminal renders rich terminal output with colors and styling
	FormatTerminal
)

// String returns the string representation of the format
func (f Format) String() string {
	if f == FormatTerminal {
		return "term"
	}
	return "text"
}

// DetectFormat determines the output format for output from NO_COLOR, the
// terminal and its color support
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}
