package main

import (
	"runtime"

	"github.com/bnema/dumber-addons/internal/cli/cmd"
	"github.com/bnema/dumber-addons/internal/domain/build"
	"github.com/bnema/dumber-addons/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()
	defer logging.RecoverPanic(logging.NewFromEnv())

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
