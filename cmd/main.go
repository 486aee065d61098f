package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/pflag"
)

// Set at release time with
// -ldflags "-X github.com/sqliteodbc/registerdriver/cmd.version=... -X github.com/sqliteodbc/registerdriver/cmd.commit=...".
var (
	version string = "dev"
	commit  string = "dev"
)

// Execute runs the root command and exits the program if it fails.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Failed to update driver registration", "error", err.Error())
		os.Exit(1)
	}
}

// versionString reports the linker-provided version, falling back to the module version
// and VCS revision recorded by `go build`/`go install` when no ldflags were given.
func versionString() string {
	v, c := version, commit

	if info, ok := debug.ReadBuildInfo(); ok {
		if v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
		for _, s := range info.Settings {
			if c == "dev" && s.Key == "vcs.revision" && s.Value != "" {
				c = s.Value
			}
		}
	}

	return fmt.Sprintf("%s (%s)", v, c)
}

// parseLoggingFlags makes a stderr slog TextHandler the default logger, at debug level
// when either -v or --trace is given.
func parseLoggingFlags(flags *pflag.FlagSet) {
	verbose, _ := flags.GetBool("verbose")
	trace, _ := flags.GetBool("trace")

	level := slog.LevelInfo
	if verbose || trace {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
