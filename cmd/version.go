package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/kamusis/devguide/cmd.version=...".
var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show DevGuide version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		info, _ := debug.ReadBuildInfo()
		resolveBuild(info).print(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

type buildDetails struct {
	Version, Commit, Date string
}

// resolveBuild prefers linker-set values and falls back to what the Go
// toolchain stamped into the binary (module version, VCS revision and time).
func resolveBuild(info *debug.BuildInfo) buildDetails {
	b := buildDetails{Version: version, Commit: commit, Date: buildDate}
	if info == nil {
		return b
	}
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && b.Commit == "":
			b.Commit = s.Value
		case s.Key == "vcs.time" && b.Date == "":
			b.Date = s.Value
		}
	}
	return b
}

func (b buildDetails) print(w io.Writer) {
	fmt.Fprintf(w, "Version:    %s\n", b.Version)
	fmt.Fprintf(w, "Commit:     %s\n", emptyAsNA(b.Commit))
	fmt.Fprintf(w, "Build Date: %s\n", emptyAsNA(b.Date))
	fmt.Fprintf(w, "Go Version: %s\n", runtime.Version())
	fmt.Fprintf(w, "OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func emptyAsNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
