// Command grafy analyzes graphs described in the textual .tg format:
// structural properties, degree tables, matrix representations, shortest
// paths, CSV/YAML export, and an interactive explorer.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
