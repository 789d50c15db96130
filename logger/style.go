package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// A style is the console rendering for one Severity:
// a bold, inverted prefix badge, a bold label, and a plain message body,
// all in the severity's color.
type style struct {
	prefix  *color.Color
	label   *color.Color
	message *color.Color
}

func newStyle(attr color.Attribute) style {
	return style{
		prefix:  color.New(attr, color.Bold, color.ReverseVideo),
		label:   color.New(attr, color.Bold),
		message: color.New(attr),
	}
}

var styles = map[Severity]style{
	SeverityLog:      newStyle(color.FgWhite),
	SeverityError:    newStyle(color.FgRed),
	SeverityDebug:    newStyle(color.FgMagenta),
	SeverityInfo:     newStyle(color.FgCyan),
	SeverityWarn:     newStyle(color.FgYellow),
	SeverityDevtools: newStyle(color.FgHiMagenta),
}

// render formats e for the console.
// Styling codes are omitted when styled is false.
func (s style) render(styled bool, e Entry) string {
	if !styled {
		return fmt.Sprintf("[%s] [%s] %s", e.Prefix, e.Label, e.Message)
	}

	return fmt.Sprintf("%s %s %s",
		s.prefix.Sprintf("[%s]", e.Prefix),
		s.label.Sprintf("[%s]", e.Label),
		s.message.Sprint(e.Message),
	)
}

// styledWriter asserts whether w is an interactive terminal.
//
// Per-instance [color.Color] values write escape codes to any writer,
// bypassing color's own tty detection of os.Stdout,
// so the check happens here for whichever writer the logger is bound to.
func styledWriter(w io.Writer) bool {
	if color.NoColor {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
