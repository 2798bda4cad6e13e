package main

import "github.com/spf13/cobra"

var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "depthchart",
		Short:        "Manage sports team depth charts",
		Long:         `Maintain ordered depth charts per position for teams across sports, either as a one-shot demo or as an HTTP service.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(newDemoCmd(), newServeCmd())
	return root
}
