package main

import "cinemax-cli/cmd"

var (
	version = "dev"
	commit  = "none"
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Execute()
}
