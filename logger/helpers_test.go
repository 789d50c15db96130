package logger_test

import (
	"regexp"
	"sync"
)

var stampRegexp = regexp.MustCompile(`^\[\d{2} \d{2} \d{4} \d{2}:\d{2}:\d{2}\] `)

// spyFS implements logger.FS in memory, recording every directory
// creation and appended record.
type spyFS struct {
	mu        sync.Mutex
	mkdirErr  error
	appendErr error
	dirs      []string
	records   []string
}

func (f *spyFS) MkdirAll(dir string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.mkdirErr != nil {
		return f.mkdirErr
	}

	f.dirs = append(f.dirs, dir)
	return nil
}

func (f *spyFS) Append(name string, b []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.appendErr != nil {
		return f.appendErr
	}

	f.records = append(f.records, string(b))
	return nil
}

func (f *spyFS) Records() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, len(f.records))
	copy(out, f.records)
	return out
}

// spySink implements logger.DevtoolsSink, capturing the last call.
type spySink struct {
	calls  int
	format string
	styles []string
}

func (s *spySink) ConsoleLog(format string, styles ...string) {
	s.calls++
	s.format = format
	s.styles = styles
}
