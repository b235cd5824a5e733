package main

import (
	"os"

	"tally.dev/cmd/cli"
)

func main() {
	err := cli.Run()
	if err != nil {
		os.Exit(1)
	}
}
