package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/mediatidy/cmd/mediatidy"
	"github.com/arthur-debert/mediatidy/internal/version"
)

func main() {
	rootCmd := mediatidy.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "MEDIATIDY",
		Section: "1",
		Source:  "mediatidy " + version.Version,
		Manual:  "mediatidy manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
