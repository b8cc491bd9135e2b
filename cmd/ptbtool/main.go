package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "ptbtool",
		Short: "Read, transform and query Penn Treebank parse trees",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newSpansCmd())
	rootCmd.AddCommand(newAddRootCmd())
	rootCmd.AddCommand(newIndexCmd())
	rootCmd.AddCommand(newStructureCmd())
	rootCmd.AddCommand(newPatternsCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
