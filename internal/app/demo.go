package app

import (
	"fmt"
	"io"

	"github.com/riskibarqy/depth-chart/internal/domain/sport"
)

// RunDemo seeds a fresh manager with the demo roster and writes each
// starter's backups followed by the full depth chart to w.
func RunDemo(w io.Writer, teamName string) error {
	team, err := SeedDemo(sport.NewManager(), teamName)
	if err != nil {
		return err
	}

	chart := team.DepthChart()
	if _, err := fmt.Fprintf(w, "%s depth chart demo for %s\n", DemoSportName, team.Name()); err != nil {
		return err
	}

	for _, starter := range DemoStarters() {
		backups, err := chart.GetBackups(starter.Position, starter.Player)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "%s backups for %s:\n", starter.Position, starter.Player.Name); err != nil {
			return err
		}
		for _, backup := range backups {
			if _, err := fmt.Fprintln(w, backup); err != nil {
				return err
			}
		}
	}

	_, err = fmt.Fprintf(w, "Full depth chart:\n%s\n", chart.GetFullDepthChart())
	return err
}
