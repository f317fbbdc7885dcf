package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "qanneal",
		Short: "Simulated annealing over integer-valued quadratic energy functions",
	}

	root.AddCommand(newRunCmd())

	return root
}
