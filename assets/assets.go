// Package assets embeds the default shot definitions so the sandbox runs
// without a checkout next to the binary.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:shots
var shotFS embed.FS

// DefaultDefinitions is the path of the bundled definition file inside Shots.
const DefaultDefinitions = "shots/SHOTS.def"

// Shots returns the embedded definition files.
func Shots() fs.FS {
	return shotFS
}
