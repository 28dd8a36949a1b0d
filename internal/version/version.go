// Package version reports how the rfs binary was built.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is set at build time with -ldflags "-X .../version.Version=v1.2.3".
var Version = "dev"

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `yaml:"version"`
	Commit    string `yaml:"commit,omitempty"`
	Modified  bool   `yaml:"modified,omitempty"`
	GoVersion string `yaml:"go_version"`
	Platform  string `yaml:"platform"`
}

// Get collects the build information, preferring the linker-provided version
// and falling back to module and VCS data embedded by the Go toolchain.
func Get() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// Short returns "rfs <version>" with an abbreviated commit when known.
func (b BuildInfo) Short() string {
	s := "rfs " + b.Version
	if len(b.Commit) >= 7 {
		s += fmt.Sprintf(" (%s)", b.Commit[:7])
	}
	if b.Modified {
		s += " (dirty)"
	}
	return s
}
