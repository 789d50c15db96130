package logger

import "fmt"

// A DevtoolsSink receives browser-console-style log calls from a logger
// running under [SurfaceRenderer].
//
// The format string uses "%c" segments the way a browser console does;
// styles carries one CSS declaration list per segment, in order.
// GUI hosts forward both straight into their console.log binding.
type DevtoolsSink interface {
	ConsoleLog(format string, styles ...string)
}

// Badge colors for the devtools template:
// the prefix sits on a filled background, the label on a tinted one.
const (
	devtoolsBadge = "background:#8e44ad;color:#fff;font-weight:bold;border-radius:3px"
	devtoolsTint  = "background:#f4ecf7;color:#8e44ad;font-weight:bold;border-radius:3px"
	devtoolsText  = "font-weight:bold"
)

// devtoolsRender formats e as a three-segment styled console template:
// prefix badge, label badge, bold message.
func devtoolsRender(e Entry) (string, []string) {
	format := fmt.Sprintf("%%c %s %%c %s %%c %s", e.Prefix, e.Label, e.Message)
	return format, []string{devtoolsBadge, devtoolsTint, devtoolsText}
}
