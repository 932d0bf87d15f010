package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ttsfront/internal/pkg/ttsfront/frontend"
)

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List registered front-ends",
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := frontend.ListBackends()
			fmt.Fprintf(cmd.OutOrStdout(), "Available backends (%d):\n", len(names))
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
			return nil
		},
	}
}
