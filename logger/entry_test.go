package logger_test

import (
	"errors"
	"strings"
	"testing"

	player "github.com/hadidonk/youtube-playlist-player"
	"github.com/hadidonk/youtube-playlist-player/logger"
	"github.com/stretchr/testify/require"
)

func TestNewEntryZeroArgs(t *testing.T) {
	// Act
	_, ok := logger.NewEntry("playback", nil)

	// Assert
	require.False(t, ok)
}

func TestNewEntryPrimitives(t *testing.T) {
	// Act
	e, ok := logger.NewEntry("playback", nil, "X", "a", "b")

	// Assert
	require.True(t, ok)
	require.Equal(t, "PLAYBACK", e.Prefix)
	require.Equal(t, "X", e.Label)
	require.Equal(t, "a b", e.Message)
}

func TestNewEntryLabelOnly(t *testing.T) {
	// Act
	e, ok := logger.NewEntry("playback", nil, "ready")

	// Assert
	require.True(t, ok)
	require.Equal(t, "ready", e.Label)
	require.Equal(t, "", e.Message)
}

func TestNewEntryLabelNotForcedToString(t *testing.T) {
	// Act
	e, ok := logger.NewEntry("queue", nil, 404, "not found")

	// Assert
	require.True(t, ok)
	require.Equal(t, "404", e.Label)
	require.Equal(t, "not found", e.Message)
}

func TestNewEntryMixedScalars(t *testing.T) {
	// Arrange
	err := errors.New("boom")

	// Act
	e, ok := logger.NewEntry("queue", nil, "state", 3, true, 1.5, nil, err)

	// Assert
	require.True(t, ok)
	require.Equal(t, "3 true 1.5 <nil> boom", e.Message)
}

func TestNewEntryStructured(t *testing.T) {
	// Arrange
	type track struct {
		Title    string
		Duration int
		hidden   bool
	}
	v := track{Title: "intro", Duration: 61, hidden: true}

	// Act
	e, ok := logger.NewEntry("queue", nil, "loaded", v)

	// Assert
	require.True(t, ok)
	require.True(t, strings.HasPrefix(e.Message, "\n"), "structured values open on a fresh line")
	require.Contains(t, e.Message, "Title")
	require.Contains(t, e.Message, "intro")
	require.Contains(t, e.Message, "Duration")
	require.Contains(t, e.Message, "61")
	require.Contains(t, e.Message, "hidden", "unexported fields are dumped too")
}

func TestNewEntryStructuredBetweenScalars(t *testing.T) {
	// Act
	e, ok := logger.NewEntry("queue", nil, "debug", "before", map[string]any{"k": "v"}, "after")

	// Assert
	require.True(t, ok)
	require.Contains(t, e.Message, "before \n")
	require.Contains(t, e.Message, `"v"`)
	require.True(t, strings.HasSuffix(e.Message, " after"))
}

func TestNewEntryMasksKeys(t *testing.T) {
	// Arrange
	vals := map[string]any{"user": "pat", "password": "hunter2"}

	// Act
	e, ok := logger.NewEntry("auth", []string{"password"}, "login", vals)

	// Assert
	require.True(t, ok)
	require.Contains(t, e.Message, player.LogMaskVal)
	require.NotContains(t, e.Message, "hunter2")
	require.Contains(t, e.Message, "pat")
}

func TestNewEntryMaskingLeavesArgumentUntouched(t *testing.T) {
	// Arrange
	creds := map[string]any{
		"user":     "pat",
		"password": "hunter2",
		"session":  map[string]any{"token": "tok_123"},
	}

	// Act
	e, ok := logger.NewEntry("auth", []string{"password", "token"}, "login", creds)

	// Assert: masked values appear only in the rendering
	require.True(t, ok)
	require.NotContains(t, e.Message, "hunter2")
	require.NotContains(t, e.Message, "tok_123")
	require.Equal(t, "hunter2", creds["password"])
	require.Equal(t, map[string]any{"token": "tok_123"}, creds["session"])
}
