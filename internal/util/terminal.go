package util

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 32
)

// TerminalSize returns the size of the terminal w writes to, or the defaults when w is not a terminal
func TerminalSize(w io.Writer) (width, height int) {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil && width > 0 && height > 0 {
			return width, height
		}
	}

	return DefaultWidth, DefaultHeight
}

// IsTerminal is true when w is attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// Wrap word-wraps text to width columns, indenting every line by leftMargin and reserving
// rightMargin columns on the right
func Wrap(text string, leftMargin, rightMargin, width int) string {
	limit := width - leftMargin - rightMargin
	if limit < 1 {
		limit = 1
	}
	margin := strings.Repeat(" ", leftMargin)
	lines := strings.Split(wordwrap.WrapString(text, uint(limit)), "\n")

	return margin + strings.Join(lines, "\n"+margin)
}

// Pad right-pads text with spaces to width display columns
func Pad(text string, width int) string {
	return runewidth.FillRight(text, width)
}

// Header pads text to the full width so that a background colour spans the line
func Header(text string, width int) string {
	return Pad(text, width)
}

// Beep rings the terminal bell
func Beep(w io.Writer) {
	_, _ = io.WriteString(w, "\a")
}
