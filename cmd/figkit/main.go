// Command figkit renders templates with embedded PostScript figures.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
