package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	player "github.com/hadidonk/youtube-playlist-player"
)

// UserLogDir returns the OS-specific directory user-facing applications
// write their logs under.
func UserLogDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Logs"), nil

	case "windows":
		if dir := os.Getenv("AppData"); dir != "" {
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "AppData", "Roaming"), nil

	default:
		if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "state"), nil
	}
}

// LogFilePath resolves where the named application's log file lives:
//
//	<user log dir>/<app name>/<app name>.log
//
// The path never changes within a process.
func LogFilePath(ai player.AppInfo) (string, error) {
	if err := ai.Valid(); err != nil {
		return "", err
	}

	dir, err := UserLogDir()
	if err != nil {
		return "", fmt.Errorf("%w: no user log directory: %s", player.ErrNotExist, err)
	}

	return filepath.Join(dir, ai.Name, ai.Name+".log"), nil
}
