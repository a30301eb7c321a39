package main

import (
	"os"

	"github.com/arthur-debert/mediatidy/cmd/mediatidy"
)

func main() {
	os.Exit(mediatidy.Run(mediatidy.NewPruneCmd()))
}
