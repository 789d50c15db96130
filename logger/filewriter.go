package logger

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"
)

const (
	// stampFmt is the day-month-year-time layout file records open with.
	stampFmt = "02 01 2006 15:04:05"

	// lineTerm terminates every file record.
	lineTerm = "\r\n"
)

// A fileWriter mirrors formatted log lines to an append-only file.
//
// Writes are fire-and-forget: each one runs on a detached goroutine through
// an independent ensure-directory-then-append cycle, and a failure's only
// observable effect is a diagnostic handed to errs. No ordering holds
// between two writes or between a write and its console line.
type fileWriter struct {
	fs   FS
	path string

	// errs receives best-effort diagnostics for failed writes.
	// It may be called from the write goroutine.
	errs func(format string, args ...any)

	wg sync.WaitGroup
}

// write timestamps line, appends the CRLF terminator, and queues the record
// for appending to the log file. It never blocks on I/O and never fails.
func (w *fileWriter) write(line string) {
	if w == nil {
		return
	}

	record := fmt.Sprintf("[%s] %s%s", time.Now().Format(stampFmt), line, lineTerm)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		if err := w.fs.MkdirAll(filepath.Dir(w.path)); err != nil {
			w.errs("cannot create log directory: %s", err)
			return
		}

		if err := w.fs.Append(w.path, []byte(record)); err != nil {
			w.errs("cannot append to %s: %s", w.path, err)
		}
	}()
}

// flush blocks until every record queued so far has settled.
func (w *fileWriter) flush() {
	if w == nil {
		return
	}

	w.wg.Wait()
}
