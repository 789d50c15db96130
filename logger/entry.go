package logger

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	player "github.com/hadidonk/youtube-playlist-player"
)

// An Entry is the structured form of one logging call,
// created per call and never stored.
type Entry struct {
	// Prefix is the upper-cased tag of the module the call originated in.
	Prefix string

	// Label is the first argument of the call, a short tag by convention.
	Label string

	// Message is the remaining arguments, stringified and space-joined.
	// Non-primitive arguments expand into a multi-line structural dump.
	Message string
}

// dumper renders structured arguments: deep, indented,
// unexported fields included, nothing truncated, no color markup.
// Pointer addresses and capacities are dropped so repeated dumps of one
// value agree.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// NewEntry formats args into an Entry for the module identified by tag.
//
// The first argument becomes the Label and is consumed;
// the rest become the Message.
// Values of masked keys in any map[string]any argument render as
// [player.LogMaskVal]; the argument itself is never written to,
// so logging a value cannot change it.
//
// NewEntry returns false when args is empty:
// the caller treats the whole logging call as a no-op.
func NewEntry(tag string, masked []string, args ...any) (Entry, bool) {
	if len(args) == 0 {
		return Entry{}, false
	}

	e := Entry{
		Prefix: strings.ToUpper(tag),
		Label:  fmt.Sprint(args[0]),
	}

	rest := args[1:]
	parts := make([]string, len(rest))
	for i, arg := range rest {
		parts[i] = stringify(arg, masked)
	}

	e.Message = strings.Join(parts, " ")
	return e, true
}

// fileBody renders e as the plain-text body of a log-file record:
// the severity's file tag, the bracketed prefix, then label and message.
func (e Entry) fileBody(s Severity) string {
	body := fmt.Sprintf("[%s] %s", e.Prefix, e.Label)
	if e.Message != "" {
		body += " " + e.Message
	}

	if tag := s.FileTag(); tag != "" {
		return tag + " " + body
	}

	return body
}

// An argKind classifies a logging argument:
// string-convertible scalars pass through fmt.Sprint,
// everything else is dumped structurally.
type argKind int

const (
	argPrimitive argKind = iota
	argStructured
)

// kindOf applies the conversion rule.
// Untyped nil, errors, and fmt.Stringers count as string-convertible.
func kindOf(v any) argKind {
	if v == nil {
		return argPrimitive
	}

	switch v.(type) {
	case error, fmt.Stringer:
		return argPrimitive
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return argPrimitive
	default:
		return argStructured
	}
}

func stringify(v any, masked []string) string {
	if kindOf(v) == argPrimitive {
		return fmt.Sprint(v)
	}

	if m, ok := v.(map[string]any); ok && len(masked) > 0 {
		clone := cloneTree(m)
		for _, key := range masked {
			player.Mask(clone, key)
		}
		v = clone
	}

	return "\n" + strings.TrimRight(dumper.Sdump(v), "\n")
}

// cloneTree copies m and every nested map[string]any so masking applies to
// the copy alone: data flows one way through the formatter,
// and caller-owned values stay untouched.
func cloneTree(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			out[k] = cloneTree(nested)
			continue
		}

		out[k] = v
	}

	return out
}
