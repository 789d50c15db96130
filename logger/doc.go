/*

Package logger provides leveled, labeled console logging for the application
and optionally mirrors plain-text copies of every line to an append-only log
file, forming a durable audit trail.

# Overview

A [PlayerLogger] is constructed once per module with [New],
bound to the module's tag:

	log, err := logger.New("playback", logger.WithFileWriting())
	if err != nil {
		// the log directory could not be created
	}

	log.Info("queue", "advanced to", next)

Each of the six logging methods - [*PlayerLogger.Log], [*PlayerLogger.Error],
[*PlayerLogger.Debug], [*PlayerLogger.Devtools], [*PlayerLogger.Info],
[*PlayerLogger.Warn] - is variadic.
The first argument is a short label; the rest become the message.
Non-primitive arguments are expanded into an indented, multi-line structural
dump so the full value lands in the log.
A call with no arguments does nothing at all.

# Console output

Console lines take the shape

	[PREFIX] [LABEL] MESSAGE

where the prefix is the upper-cased module tag in the severity's color with
bold, inverted emphasis, the label is bold in the same color,
and the message is the plain severity color.
Styling is dropped automatically when the console is not a terminal.

Debug, Info, Warn, and Devtools only emit while debug mode is active.
Debug mode defaults from the DEBUG environment variable,
falling back to the current [player.Environment];
override it with [WithDebugMode].

# File output

With [WithFileWriting], every emitted line is also appended to

	<user log dir>/<app name>/<app name>.log

as a timestamped, CRLF-terminated record:

	[02 01 2006 15:04:05] [ERROR] [PREFIX] label message

File appends are fired on a detached goroutine and never block or fail the
logging call; a failed append surfaces only as a best-effort diagnostic on
the error console. Call [*PlayerLogger.Flush] before exiting to let queued
appends settle.

# Devtools

When the logger runs under [SurfaceRenderer] - inside a GUI rendering
surface rather than a terminal - [*PlayerLogger.Debug] delegates to
[*PlayerLogger.Devtools], which formats a browser-console-style template
("%c" badge segments plus CSS declarations) and hands it to the configured
[DevtoolsSink].
*/
package logger
