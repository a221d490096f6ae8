// Package build provides domain entities for build information.
package build

// DefaultAppName is the application name shown in user-facing text.
const DefaultAppName = "Dumber"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// AppInfo pairs the configured application name with the build version.
type AppInfo struct {
	name    string
	version string
}

// NewAppInfo returns the application identity. An empty name falls back to DefaultAppName.
func NewAppInfo(name string, info Info) AppInfo {
	if name == "" {
		name = DefaultAppName
	}
	return AppInfo{name: name, version: info.Version}
}

func (a AppInfo) Name() string    { return a.name }
func (a AppInfo) Version() string { return a.version }

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/dumber-addons"
}
