package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/treebank/format"
	"github.com/dhamidi/treebank/ptb"
)

func newAddRootCmd() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "add-root [file]",
		Short: "Ensure every tree has a labeled root node",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()

			return forEachTree(in, name, func(n int, tree *ptb.Node) error {
				fmt.Println(format.Bracket(ptb.AddRoot(tree, label)))
				fmt.Println()
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&label, "label", ptb.DefaultRootLabel, "root label")

	return cmd
}
