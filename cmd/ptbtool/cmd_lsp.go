package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/treebank/lsp"
)

func newLSPCmd() *cobra.Command {
	var verbosity int
	var configPath string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return lsp.NewServer(version, cfg).RunStdio()
		},
	}

	cmd.Flags().IntVar(&verbosity, "verbose", 0, "log verbosity")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default .ptbtool.toml if present)")

	return cmd
}
