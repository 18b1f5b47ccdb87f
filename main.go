package main

import "github.com/mrlokans/bookery/internal/cli"

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cli.Execute(cli.BuildInfo{Version: Version, Commit: Commit})
}
