package version

import (
	"runtime/debug"
)

// Info contains build information embedded at compile time.
type Info struct {
	*debug.BuildInfo
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
	Date    string `json:"date,omitempty"`
}

// version gets filled by a linker argument and should contain the app version.
var version string

// Get version related embedded information.
func Get() Info {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		panic("no build info available: app was built without module support")
	}

	info := Info{BuildInfo: buildInfo, Version: version}
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Commit = setting.Value
		case "vcs.time":
			info.Date = setting.Value
		}
	}
	return info
}
