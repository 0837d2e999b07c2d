package main

import (
	"os"

	"github.com/gridwatch/loadshed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
