// Package build reports what binary is running. The version comes from the
// embedded VERSION file unless overridden with ldflags:
//
//	-X github.com/tacogips/depot/internal/build.version=x.y.z
//	-X github.com/tacogips/depot/internal/build.commit=$(git rev-parse HEAD)
//	-X github.com/tacogips/depot/internal/build.date=$(date -u +%FT%TZ)
package build

import (
	_ "embed"
	"runtime"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

var (
	version string
	commit  = "unknown"
	date    = "unknown"
)

// Version returns the application version.
func Version() string {
	if version != "" {
		return version
	}
	return strings.TrimSpace(embeddedVersion)
}

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Current returns the Info of this binary.
func Current() Info {
	return Info{
		Version:   Version(),
		GoVersion: runtime.Version(),
		Commit:    commit,
		BuildDate: date,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}
