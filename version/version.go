// Package version exposes build metadata for the cabo command line tools.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the application version, set via ldflags.
	Version = "devel"

	// Revision is the git commit revision.
	Revision = getRevision()
	// GoVersion is the Go version used to build.
	GoVersion = runtime.Version()
	// Platform is the os/arch target.
	Platform = runtime.GOOS + "/" + runtime.GOARCH
)

// String returns a single-line version summary suitable for --version output.
func String() string {
	return fmt.Sprintf("%s (revision %s, %s, %s)", Version, Revision, GoVersion, Platform)
}

func getRevision() string {
	rev := "unknown"

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return rev
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			if v.Value == "true" {
				modified = true
			}
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
