package main

import (
	"os"

	"github.com/flawscan/flawscan/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
