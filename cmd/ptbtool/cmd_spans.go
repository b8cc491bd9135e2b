package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/treebank/format"
	"github.com/dhamidi/treebank/ptb"
)

func newSpansCmd() *cobra.Command {
	var outputFormat string
	var configPath string

	cmd := &cobra.Command{
		Use:   "spans [file]",
		Short: "List labeled constituent spans for every tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat != "text" && outputFormat != "json" {
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			in, name, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()

			jsonEncoder := format.NewSpanJSONEncoder(os.Stdout)
			first := true

			return forEachTree(in, name, func(n int, tree *ptb.Node) error {
				tree, err := cfg.Apply(tree)
				if err != nil {
					if errors.Is(err, ptb.ErrEmptyTree) {
						fmt.Fprintf(os.Stderr, "%s: tree %d is empty after transforms\n", name, n)
						return nil
					}
					return err
				}

				spans := ptb.AllSpans(tree)
				if outputFormat == "json" {
					return jsonEncoder.Encode(spans)
				}

				if !first {
					fmt.Println()
				}
				first = false
				for _, s := range spans {
					fmt.Printf("%s\t%d\t%d\n", s.Label, s.Begin, s.End)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default .ptbtool.toml if present)")

	return cmd
}
