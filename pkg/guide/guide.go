// Package guide embeds the user guide shown by `mediatidy guide` and the
// help topics reachable through `mediatidy help <topic>`.
package guide

import (
	"embed"
	"io/fs"
)

// Overview is the topic printed by `mediatidy guide`
const Overview = "guide"

//go:embed topics/*.md
var content embed.FS

// Topics returns the embedded topic files
func Topics() fs.FS {
	sub, err := fs.Sub(content, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}
