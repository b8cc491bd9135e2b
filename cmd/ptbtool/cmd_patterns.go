package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/treebank/pattern"
	"github.com/dhamidi/treebank/ptb"
)

func newPatternsCmd() *cobra.Command {
	var opts pattern.Options
	var annotate bool

	cmd := &cobra.Command{
		Use:   "patterns [file]",
		Short: "Extract top-level rewrite patterns",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()

			return forEachTree(in, name, func(n int, tree *ptb.Node) error {
				var line string
				var err error
				if annotate {
					line, err = pattern.Annotated(tree)
				} else {
					var prod pattern.Production
					prod, err = pattern.Extract(tree, opts)
					line = prod.String()
				}
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

	cmd.Flags().BoolVar(&annotate, "annotate", false, "mark constituents headed by a report verb")
	cmd.Flags().BoolVar(&opts.SimplifyTags, "simplify-tags", false, "collapse labels like NP-SBJ-1 to NP")
	cmd.Flags().BoolVar(&opts.RemoveQuotes, "remove-quotes", false, "drop quote-mark children")
	cmd.Flags().BoolVar(&opts.RemoveInitialCC, "remove-initial-cc", false, "drop a leading conjunction")

	return cmd
}
