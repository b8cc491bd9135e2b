package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/treebank/pattern"
	"github.com/dhamidi/treebank/ptb"
)

func newStructureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "structure [file]",
		Short: "Print the top-level structure of every tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()

			return forEachTree(in, name, func(n int, tree *ptb.Node) error {
				line, err := pattern.Structure(tree)
				if errors.Is(err, pattern.ErrNoProduction) {
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Println(line)
				return nil
			})
		},
	}
}
