// Package main is the splitview entry point.
package main

import (
	"runtime"

	"github.com/bnema/splitview/internal/cli/cmd"
	"github.com/bnema/splitview/internal/domain/build"
	"github.com/bnema/splitview/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	defer logging.RecoverPanic(logging.NewFromEnv())

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
