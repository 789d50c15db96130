package logger

import player "github.com/hadidonk/youtube-playlist-player"

var _ player.Enumerable = SurfaceTerminal

// A Surface identifies the execution context rendering console output.
//
// A plain terminal renders ANSI styling;
// a GUI rendering surface exposes a browser-style console instead,
// reached through a [DevtoolsSink].
type Surface int

const (
	SurfaceTerminal Surface = iota
	SurfaceRenderer
)

func (s Surface) String() string {
	return map[Surface]string{
		SurfaceTerminal: "terminal",
		SurfaceRenderer: "renderer",
	}[s]
}

func (s Surface) Valid() error {
	switch s {
	case SurfaceTerminal, SurfaceRenderer:
		return nil
	default:
		return player.ErrNotValid
	}
}
