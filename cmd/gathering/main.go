package main

import (
	"os"

	"github.com/bnema/gathering-relay/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
