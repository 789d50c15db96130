package logger

import player "github.com/hadidonk/youtube-playlist-player"

var _ player.Enumerable = SeverityLog

// A Severity is one of the fixed set of levels a logging call occurs at.
type Severity int

const (
	SeverityLog Severity = iota
	SeverityError
	SeverityDebug
	SeverityInfo
	SeverityWarn
	SeverityDevtools
)

// NewSeverity casts val into a Severity,
// returning -1 when val names no known Severity.
func NewSeverity(val string) Severity {
	switch val {
	case "log":
		return SeverityLog
	case "error":
		return SeverityError
	case "debug":
		return SeverityDebug
	case "info":
		return SeverityInfo
	case "warn":
		return SeverityWarn
	case "devtools":
		return SeverityDevtools
	default:
		return Severity(-1)
	}
}

func (s Severity) String() string {
	return map[Severity]string{
		SeverityLog:      "log",
		SeverityError:    "error",
		SeverityDebug:    "debug",
		SeverityInfo:     "info",
		SeverityWarn:     "warn",
		SeverityDevtools: "devtools",
	}[s]
}

func (s Severity) Valid() error {
	switch s {
	case SeverityLog, SeverityError, SeverityDebug, SeverityInfo, SeverityWarn, SeverityDevtools:
		return nil
	default:
		return player.ErrNotValid
	}
}

// FileTag returns the bracketed tag encoding s in a log-file record.
//
// Only two tags exist: error lines carry "[ERROR]" and the whole debug class
// collapses to "[DEBUG]"; plain log lines carry no tag at all.
// The asymmetry is long-standing and file consumers depend on it.
func (s Severity) FileTag() string {
	switch s {
	case SeverityError:
		return "[ERROR]"
	case SeverityDebug, SeverityInfo, SeverityWarn, SeverityDevtools:
		return "[DEBUG]"
	default:
		return ""
	}
}

// gated asserts whether s is suppressed outside debug mode.
func (s Severity) gated() bool {
	switch s {
	case SeverityDebug, SeverityInfo, SeverityWarn, SeverityDevtools:
		return true
	default:
		return false
	}
}
