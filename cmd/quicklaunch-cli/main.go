package main

import "quicklaunch/cmd/quicklaunch-cli/cmd"

func main() {
	cmd.Execute()
}
