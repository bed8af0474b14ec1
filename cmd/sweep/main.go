package main

import "sweep.dev/cli/cmd/sweep/cli"

func main() {
	cli.Execute()
}
