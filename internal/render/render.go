// Package render provides Printer implementations for generator output.
package render

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/seqgen/internal/numgen"
	"github.com/abhisek/seqgen/internal/ui/theme"
)

// Text writes one line per header and one line per value.
// With styling enabled, headers and values are rendered with the theme.
type Text struct {
	w      io.Writer
	styled bool
}

// NewText returns a plain Text printer writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// NewStyledText returns a Text printer that colors its output.
func NewStyledText(w io.Writer) *Text {
	return &Text{w: w, styled: true}
}

func (t *Text) Header(title string) error {
	return t.line(headerStyle(title), title)
}

func (t *Text) Value(v int) error {
	return t.line(theme.Value, fmt.Sprint(v))
}

// Message writes a free-standing status line, such as the completion notice.
func (t *Text) Message(msg string) error {
	return t.line(theme.Done, msg)
}

func (t *Text) line(style lipgloss.Style, s string) error {
	if t.styled {
		s = style.Render(s)
	}
	_, err := fmt.Fprintln(t.w, s)
	return err
}

func headerStyle(title string) lipgloss.Style {
	if title == numgen.HeaderComposite {
		return theme.Title
	}
	return theme.Heading
}
