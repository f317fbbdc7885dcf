// Command qanneal runs the simulated-annealing solver from a
// declarative config file and prints a summary of the results.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
