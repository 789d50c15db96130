package player

import "fmt"

const (
	// Name is the canonical application name,
	// matching the name the desktop bundle ships under.
	Name = "youtube-playlist-player"

	// Version is the application version stamped into release builds.
	Version = "1.3.0"
)

// An AppInfo identifies the application a component acts on behalf of.
//
// Components owning per-application resources - most notably the log file -
// derive their paths from AppInfo rather than from Name directly,
// so hosts embedding those components can supply their own identity.
type AppInfo struct {
	Name    string
	Version string
}

// DefaultAppInfo constructs the AppInfo for this application.
func DefaultAppInfo() AppInfo { return AppInfo{Name: Name, Version: Version} }

// String formats AppInfo as a single "name version" token pair.
func (ai AppInfo) String() string { return fmt.Sprintf("%s %s", ai.Name, ai.Version) }

// Valid asserts the AppInfo names an application.
func (ai AppInfo) Valid() error {
	if ai.Name == "" {
		return fmt.Errorf("%w: AppInfo.Name", ErrMissingData)
	}

	return nil
}
