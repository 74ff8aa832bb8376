package main

import (
	"os"

	"github.com/pengelbrecht/arranger/cmd/arranger/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
