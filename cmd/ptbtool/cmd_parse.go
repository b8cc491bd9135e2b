package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/treebank/config"
	"github.com/dhamidi/treebank/format"
	"github.com/dhamidi/treebank/ptb"
)

func newParseCmd() *cobra.Command {
	var (
		outputFormat string
		removeEmpty  bool
		simplify     bool
		addRoot      bool
		rootLabel    string
		configPath   string
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse bracketed trees and print them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if rootLabel != "" {
				cfg.RootLabel = rootLabel
			}
			// Explicit transform flags replace the configured list.
			if removeEmpty || simplify || addRoot {
				cfg.Transforms = nil
				if removeEmpty {
					cfg.Transforms = append(cfg.Transforms, config.TransformRemoveEmpty)
				}
				if simplify {
					cfg.Transforms = append(cfg.Transforms, config.TransformSimplify)
				}
				if addRoot {
					cfg.Transforms = append(cfg.Transforms, config.TransformAddRoot)
				}
			}

			var encoder format.Encoder
			switch outputFormat {
			case "bracket":
				encoder = format.NewBracketEncoder(os.Stdout)
			case "json":
				encoder = format.NewTreeJSONEncoder(os.Stdout)
			case "tree":
				encoder = indentEncoder{w: os.Stdout}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			in, name, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()

			return forEachTree(in, name, func(n int, tree *ptb.Node) error {
				tree, err := cfg.Apply(tree)
				if err != nil {
					if errors.Is(err, ptb.ErrEmptyTree) {
						fmt.Fprintf(os.Stderr, "%s: tree %d is empty after transforms\n", name, n)
						return nil
					}
					return err
				}
				return encoder.Encode(tree)
			})
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "bracket", "output format (bracket, json, tree)")
	cmd.Flags().BoolVar(&removeEmpty, "remove-empty", false, "remove empty elements before printing")
	cmd.Flags().BoolVar(&simplify, "simplify", false, "strip function tags and indexes from labels")
	cmd.Flags().BoolVar(&addRoot, "add-root", false, "ensure a single labeled root node")
	cmd.Flags().StringVar(&rootLabel, "root-label", "", "label used by --add-root (default from config)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default .ptbtool.toml if present)")

	return cmd
}

// indentEncoder prints the multi-line indented rendering of a tree.
type indentEncoder struct {
	w io.Writer
}

func (e indentEncoder) Encode(tree *ptb.Node) error {
	_, err := fmt.Fprintln(e.w, tree.String())
	return err
}
