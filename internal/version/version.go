// Package version exposes build-time version information for Luma.
// The variables are overridden at build time with -ldflags -X.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// Info is the structured form of the version information, suitable for
// JSON output.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the version information for this build.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a human-readable version string.
func String() string {
	info := GetInfo()
	if info.Commit != "unknown" && len(info.Commit) >= 8 {
		return fmt.Sprintf("luma version %s (commit: %s, built: %s, %s, %s)",
			info.Version, info.Commit[:8], info.Date, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("luma version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
}

// Short returns just the semantic version, for cobra's --version output.
func Short() string {
	return Version
}
