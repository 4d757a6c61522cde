package main

import "stash-bridge/cmd"

func main() {
	cmd.Execute()
}
