package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	player "github.com/hadidonk/youtube-playlist-player"
)

// The Logger interface defines the severities a logging call occurs at.
//
// Every method is variadic: the first argument is a short label,
// the rest form the message. A call with no arguments is a no-op.
type Logger interface {
	Log(args ...any)
	Error(args ...any)
	Debug(args ...any)
	Devtools(args ...any)
	Info(args ...any)
	Warn(args ...any)
}

// PlayerLogger implements Logger with styled console output and an
// optional append-only file mirror.
//
// Its configuration is fixed at construction and read without locks:
// nothing mutates a PlayerLogger after New returns.
type PlayerLogger struct {
	tag    string
	app    player.AppInfo
	masked []string

	writeToFile bool
	debugMode   bool
	surface     Surface

	console    io.Writer
	errConsole io.Writer
	sink       DevtoolsSink

	fs   FS
	path string

	styled    bool
	errStyled bool
	writer    *fileWriter
}

// New constructs a PlayerLogger bound to the module identified by tag.
//
// Defaults: console output on os.Stdout, no file mirror, debug mode from
// the DEBUG environment variable (falling back to the current
// [player.Environment]), terminal surface, host filesystem.
//
// With [WithFileWriting], New resolves the log file path from the
// configured [player.AppInfo] and creates the log directory before
// returning; failing that is fatal, unlike per-write failures later.
// It then records a session-open line in the file.
func New(tag string, opts ...LoggerOptFn) (*PlayerLogger, error) {
	l := &PlayerLogger{
		tag:        tag,
		app:        player.DefaultAppInfo(),
		debugMode:  envVarOrBool("DEBUG", player.CurrentEnvironment().Debugging()),
		surface:    SurfaceTerminal,
		console:    os.Stdout,
		errConsole: os.Stderr,
		fs:         osFS{},
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.tag == "" {
		return nil, fmt.Errorf("%w: module tag", player.ErrMissingData)
	}

	if err := l.surface.Valid(); err != nil {
		return nil, fmt.Errorf("%w: surface", err)
	}

	l.styled = styledWriter(l.console)
	l.errStyled = styledWriter(l.errConsole)

	if !l.writeToFile {
		return l, nil
	}

	if l.path == "" {
		path, err := LogFilePath(l.app)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", player.ErrBadConfig, err)
		}
		l.path = path
	}

	if err := l.fs.MkdirAll(filepath.Dir(l.path)); err != nil {
		return nil, fmt.Errorf("%w: cannot create log directory: %s", player.ErrBadConfig, err)
	}

	l.writer = &fileWriter{fs: l.fs, path: l.path, errs: l.fileError}
	l.writer.write(fmt.Sprintf("[%s] session %s %s", strings.ToUpper(l.tag), uuid.NewString(), l.app))

	return l, nil
}

// Log writes a plain log line.
func (l *PlayerLogger) Log(args ...any) { l.emit(SeverityLog, args) }

// Error writes an error log line.
//
// Error lines share the standard console with every other severity;
// only their color and file tag set them apart.
func (l *PlayerLogger) Error(args ...any) { l.emit(SeverityError, args) }

// Debug writes a debug log line while debug mode is active.
//
// Under [SurfaceRenderer] the line is handed to [*PlayerLogger.Devtools]
// instead of receiving plain terminal styling.
func (l *PlayerLogger) Debug(args ...any) {
	if l.surface == SurfaceRenderer {
		l.Devtools(args...)
		return
	}

	l.emit(SeverityDebug, args)
}

// Info writes an info log line while debug mode is active.
func (l *PlayerLogger) Info(args ...any) { l.emit(SeverityInfo, args) }

// Warn writes a warning log line while debug mode is active.
func (l *PlayerLogger) Warn(args ...any) { l.emit(SeverityWarn, args) }

// Devtools writes a browser-console-styled log line while debug mode is
// active, delivering it to the configured [DevtoolsSink].
// Without a sink the line falls back to plain terminal rendering,
// so nothing is lost when no rendering surface is attached.
func (l *PlayerLogger) Devtools(args ...any) {
	if len(args) == 0 || !l.debugMode {
		return
	}

	e, ok := NewEntry(l.tag, l.masked, args...)
	if !ok {
		return
	}

	if l.sink == nil {
		fmt.Fprintln(l.console, styles[SeverityDevtools].render(l.styled, e))
	} else {
		format, css := devtoolsRender(e)
		l.sink.ConsoleLog(format, css...)
	}

	l.writer.write(e.fileBody(SeverityDevtools))
}

// Flush blocks until every file write issued so far has settled.
//
// Logging calls never wait on the file mirror;
// call Flush before process exit to keep the audit trail complete.
func (l *PlayerLogger) Flush() { l.writer.flush() }

// LogPath returns the resolved log file path,
// or the empty string when the file mirror is off.
func (l *PlayerLogger) LogPath() string {
	if l.writer == nil {
		return ""
	}

	return l.path
}

// emit runs the shared console-and-file pipeline for one call.
func (l *PlayerLogger) emit(s Severity, args []any) {
	if len(args) == 0 {
		return
	}

	if s.gated() && !l.debugMode {
		return
	}

	e, ok := NewEntry(l.tag, l.masked, args...)
	if !ok {
		return
	}

	fmt.Fprintln(l.console, styles[s].render(l.styled, e))
	l.writer.write(e.fileBody(s))
}

// fileError reports a failed file write on the error console.
// The write that failed has already returned to its caller;
// this diagnostic is the failure's only trace.
func (l *PlayerLogger) fileError(format string, args ...any) {
	e := Entry{
		Prefix:  strings.ToUpper(l.tag),
		Label:   "logfile",
		Message: fmt.Sprintf(format, args...),
	}

	fmt.Fprintln(l.errConsole, styles[SeverityError].render(l.errStyled, e))
}
