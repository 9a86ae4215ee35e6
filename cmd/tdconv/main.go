// Command tdconv runs time-domain convolutions from the command line and
// replays the exhaustive sub-range sweep used to verify the kernel.
package main

import "github.com/katalvlaran/tdconv/cmd/tdconv/cmd"

func main() {
	cmd.Execute()
}
