// nxcube - CLI for turning a virtual NxNxN cube.
package main

import (
	"github.com/SeamusWaldron/nxcube/internal/cli"
)

func main() {
	cli.Execute()
}
