package ui

import (
	"fmt"
	"io"
)

// Printer writes UI components to a plain writer, for failures reported
// before the interactive program starts.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a printer sized to the current terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: w, width: GetTerminalWidth()}
}

// Println prints content followed by a newline.
func (p *Printer) Println(content string) {
	fmt.Fprintln(p.out, content)
}

// PrintError prints an error dialog.
func (p *Printer) PrintError(title string, err error) {
	p.Println(NewErrorDialog(title, err.Error()).SetWidth(SafeDialogWidth(p.width)).Render(false))
}
