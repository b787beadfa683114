// Command ggchart renders episode analytics charts as SVG or PNG.
package main

import (
	"os"

	"github.com/gogpu/ggchart/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
