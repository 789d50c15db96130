package logger_test

import (
	"path/filepath"
	"runtime"
	"testing"

	player "github.com/hadidonk/youtube-playlist-player"
	"github.com/hadidonk/youtube-playlist-player/logger"
	"github.com/stretchr/testify/require"
)

func TestLogFilePath(t *testing.T) {
	// Act
	path, err := logger.LogFilePath(player.AppInfo{Name: "example", Version: "0.1.0"})

	// Assert
	require.Nil(t, err)
	require.True(t, filepath.IsAbs(path))
	require.Equal(t, filepath.Join("example", "example.log"), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}

func TestLogFilePathRequiresName(t *testing.T) {
	// Act
	_, err := logger.LogFilePath(player.AppInfo{})

	// Assert
	require.ErrorIs(t, err, player.ErrMissingData)
}

func TestUserLogDirHonorsXDGStateHome(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG_STATE_HOME only applies on unix-like hosts")
	}

	// Arrange
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)

	// Act
	dir, err := logger.UserLogDir()

	// Assert
	require.Nil(t, err)
	require.Equal(t, state, dir)
}
