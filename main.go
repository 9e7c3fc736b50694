package main

import (
	"os"

	"github.com/ritam/preptrail/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
