package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes colored command output
type Printer struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
	prompt  *color.Color
}

// NewPrinter creates a printer writing to out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		prompt:  color.New(color.FgBlue),
	}
}

// Success prints a confirmation line in green
func (p *Printer) Success(format string, args ...interface{}) {
	p.success.Fprintln(p.out, fmt.Sprintf(format, args...))
}

// Failure prints an error line in red
func (p *Printer) Failure(format string, args ...interface{}) {
	p.failure.Fprintln(p.out, fmt.Sprintf(format, args...))
}

// Info prints a neutral notice in blue
func (p *Printer) Info(format string, args ...interface{}) {
	p.prompt.Fprintln(p.out, fmt.Sprintf(format, args...))
}

// Infoln prints text as is in blue, followed by a newline
func (p *Printer) Infoln(text string) {
	p.prompt.Fprintln(p.out, text)
}

// Plain prints text as is
func (p *Printer) Plain(text string) {
	fmt.Fprint(p.out, text)
}

// SetNoColor turns terminal colors off for every printer when disabled is true
func SetNoColor(disabled bool) {
	if disabled {
		color.NoColor = true
	}
}
