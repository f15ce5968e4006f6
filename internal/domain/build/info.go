// Package build provides domain entities for build information.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String formats the info as the version command prints it.
func (i Info) String() string {
	return fmt.Sprintf("splitview %s\ncommit: %s\nbuilt: %s\ngo: %s", i.Version, i.Commit, i.BuildDate, i.GoVersion)
}
