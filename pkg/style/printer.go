package style

import (
	"fmt"
	"io"
)

// Printer writes styled lines to an output
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a Printer for w
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// Writer returns the underlying output
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Format returns the output format
func (p *Printer) Format() Format {
	return p.format
}

// S renders text in the named style, or returns it unchanged for plain text
func (p *Printer) S(name, text string) string {
	if p.format != FormatTerminal {
		return text
	}
	return GetStyle(name).Render(text)
}

// Println writes a line
func (p *Printer) Println(text string) {
	_, _ = fmt.Fprintln(p.w, text)
}

// Printf writes formatted text
func (p *Printer) Printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}

// Success writes a success line
func (p *Printer) Success(format string, args ...interface{}) {
	p.Println(p.S("success", "✓ ") + fmt.Sprintf(format, args...))
}

// Warning writes a warning line
func (p *Printer) Warning(format string, args ...interface{}) {
	p.Println(p.S("warning", "! ") + fmt.Sprintf(format, args...))
}

// Error writes an error line
func (p *Printer) Error(format string, args ...interface{}) {
	p.Println(p.S("error", "✗ ") + fmt.Sprintf(format, args...))
}

// Info writes an informational line
func (p *Printer) Info(format string, args ...interface{}) {
	p.Println(p.S("info", "• ") + fmt.Sprintf(format, args...))
}

// Muted writes a de-emphasised line
func (p *Printer) Muted(format string, args ...interface{}) {
	p.Println(p.S("muted", fmt.Sprintf(format, args...)))
}
