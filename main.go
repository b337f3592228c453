package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/Sefyu24/Componentcn/cmd"
)

// Set through -ldflags at release build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if version == "dev" {
		// go install builds carry the module version instead.
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
	}
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "componentcn:", err)
		os.Exit(1)
	}
}
