package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Version returns a `version` command to be added to any cobra (root) command.
func Version(name string) *cobra.Command {
	name = strings.TrimSpace(name)

	short := "Print version"
	if name != "" {
		short = "Print " + name + " version"
	}

	return &cobra.Command{
		Use:                   "version",
		Short:                 short,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			info := ReadBuildInfo()

			prefix := "version"
			if name != "" {
				prefix = name + " version"
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s from %s (%s)\n", prefix, info.Hash, info.Time, info.GoVersion)
		},
	}
}

// BuildInfo describes the commit a binary is built from.
type BuildInfo struct {
	Hash      string
	Time      string
	GoVersion string
	// Modified is true, if the binary contains uncommitted code.
	Modified bool
}

// ReadBuildInfo returns the vcs information embedded by `go build`.
// `go run` and `go test` do not embed it, in that case
// the hash is "@latest" and the time is now.
func ReadBuildInfo() BuildInfo {
	info := BuildInfo{GoVersion: runtime.Version()}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				info.Hash = setting.Value
			case "vcs.time":
				info.Time = setting.Value
			case "vcs.modified":
				info.Modified = setting.Value == "true"
			}
		}
	}

	if info.Modified || info.Hash == "" {
		info.Hash = "@latest"
		info.Time = time.Now().UTC().Format(time.RFC3339)
	}

	return info
}
