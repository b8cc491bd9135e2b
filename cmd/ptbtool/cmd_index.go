package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/treebank/format"
	"github.com/dhamidi/treebank/ptb"
)

func newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index <file>...",
		Short: "Print a sentence index: file, position, length and tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var firstErr error
			for _, name := range args {
				f, err := os.Open(name)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}

				err = forEachTree(f, name, func(n int, tree *ptb.Node) error {
					sent := ptb.NewSentence(tree)
					fmt.Printf("%s|%d|%d|%s\n", name, n, sent.Len(), format.Bracket(tree))
					return nil
				})
				f.Close()
				if err != nil && firstErr == nil {
					firstErr = err
				}
			}
			return firstErr
		},
	}
}
