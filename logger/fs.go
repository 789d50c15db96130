package logger

import "os"

// An FS exposes the narrow slice of filesystem behavior the file mirror
// needs: creating the log directory and appending whole records.
type FS interface {
	// MkdirAll creates dir and any missing parents; it is idempotent.
	MkdirAll(dir string) error

	// Append appends b to the file at name, creating it if absent.
	// A record is handed over in a single call so short appends land whole.
	Append(name string, b []byte) error
}

// osFS implements FS against the host filesystem.
type osFS struct{}

func (osFS) MkdirAll(dir string) error { return os.MkdirAll(dir, 0o755) }

func (osFS) Append(name string, b []byte) error {
	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	_, werr := f.Write(b)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}

	return werr
}
