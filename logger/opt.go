package logger

import (
	"io"

	player "github.com/hadidonk/youtube-playlist-player"
)

// A LoggerOptFn is a functional option configuring a PlayerLogger
// when constructing a new one.
type LoggerOptFn func(*PlayerLogger)

// WithFileWriting turns on the append-only file mirror.
// The log directory is created during [New]; failure there is fatal.
func WithFileWriting() LoggerOptFn {
	return func(l *PlayerLogger) {
		l.writeToFile = true
	}
}

// WithAppInfo sets the application identity the log file path derives from.
func WithAppInfo(ai player.AppInfo) LoggerOptFn {
	return func(l *PlayerLogger) {
		l.app = ai
	}
}

// WithDebugMode sets the debug-mode flag explicitly,
// overriding the environment-derived default.
// Debug, Info, Warn, and Devtools emit nothing while the flag is off.
func WithDebugMode(on bool) LoggerOptFn {
	return func(l *PlayerLogger) {
		l.debugMode = on
	}
}

// WithSurface sets the Surface the logger renders console output for.
// GUI hosts pass [SurfaceRenderer] so Debug delegates to Devtools.
func WithSurface(s Surface) LoggerOptFn {
	return func(l *PlayerLogger) {
		l.surface = s
	}
}

// WithConsole sets the writer console output goes to.
func WithConsole(w io.Writer) LoggerOptFn {
	return func(l *PlayerLogger) {
		l.console = w
	}
}

// WithErrorConsole sets the writer the file mirror's own failure
// diagnostics go to.
func WithErrorConsole(w io.Writer) LoggerOptFn {
	return func(l *PlayerLogger) {
		l.errConsole = w
	}
}

// WithFS sets the filesystem the file mirror writes through.
func WithFS(fs FS) LoggerOptFn {
	return func(l *PlayerLogger) {
		l.fs = fs
	}
}

// WithLogPath sets the log file path explicitly,
// skipping resolution from [player.AppInfo] and [UserLogDir].
func WithLogPath(path string) LoggerOptFn {
	return func(l *PlayerLogger) {
		l.path = path
	}
}

// WithDevtoolsSink attaches the browser-style console Devtools writes to.
func WithDevtoolsSink(sink DevtoolsSink) LoggerOptFn {
	return func(l *PlayerLogger) {
		l.sink = sink
	}
}

// WithMaskedKeys names map keys whose values are hidden in structural
// dumps, per [player.Mask].
func WithMaskedKeys(keys ...string) LoggerOptFn {
	return func(l *PlayerLogger) {
		l.masked = keys
	}
}
