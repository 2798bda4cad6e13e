package main

import (
	"github.com/riskibarqy/depth-chart/internal/app"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	var teamName string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build the demo NFL depth chart and print it",
		Long: `Build an NFL team with the demo roster, then print the backups of each
position's starter followed by the full depth chart.

Examples:
  depthchart demo
  depthchart demo --team "Team Awesome"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.RunDemo(cmd.OutOrStdout(), teamName)
		},
	}

	cmd.Flags().StringVarP(&teamName, "team", "t", app.DemoTeamName, "name of the demo team")
	return cmd
}
