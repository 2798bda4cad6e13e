package app

import (
	"fmt"

	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
	"github.com/riskibarqy/depth-chart/internal/domain/sport"
)

const (
	DemoSportName = depthchart.SportNFL
	DemoTeamName  = "Team Awesome"
)

var (
	demoTomBrady    = depthchart.Player{Name: "Tom Brady", Number: 12}
	demoJohnCena    = depthchart.Player{Name: "John Cena", Number: 11}
	demoMikeTyson   = depthchart.Player{Name: "Mike Tyson", Number: 13}
	demoTravisKelce = depthchart.Player{Name: "Travis Kelce", Number: 87}
	demoTaylorSwift = depthchart.Player{Name: "Taylor Swift", Number: 22}
)

// DemoEntry is one depth chart addition of the demo roster.
type DemoEntry struct {
	Position string
	Player   depthchart.Player
}

// DemoEntries lists the demo additions in the order they are applied.
func DemoEntries() []DemoEntry {
	return []DemoEntry{
		{Position: depthchart.PositionQB, Player: demoTomBrady},
		{Position: depthchart.PositionQB, Player: demoJohnCena},
		{Position: depthchart.PositionTE, Player: demoTravisKelce},
		{Position: depthchart.PositionTE, Player: demoTaylorSwift},
		{Position: depthchart.PositionRB, Player: demoTaylorSwift},
		{Position: depthchart.PositionLS, Player: demoMikeTyson},
		{Position: depthchart.PositionLS, Player: demoTravisKelce},
	}
}

// DemoStarters lists the starter whose backups the demo prints per position.
func DemoStarters() []DemoEntry {
	return []DemoEntry{
		{Position: depthchart.PositionQB, Player: demoTomBrady},
		{Position: depthchart.PositionTE, Player: demoTravisKelce},
		{Position: depthchart.PositionRB, Player: demoTaylorSwift},
		{Position: depthchart.PositionLS, Player: demoMikeTyson},
	}
}

// SeedDemo creates teamName under the NFL sport and fills its depth chart
// with the demo roster. The NFL sport is registered if the manager lacks it.
func SeedDemo(manager *sport.Manager, teamName string) (*sport.Team, error) {
	nfl, ok, err := manager.Sport(DemoSportName)
	if err != nil {
		return nil, err
	}
	if !ok {
		nfl, err = manager.CreateSport(DemoSportName, depthchart.NFLPositions())
		if err != nil {
			return nil, err
		}
	}

	team, err := nfl.CreateTeam(teamName)
	if err != nil {
		return nil, err
	}

	chart := team.DepthChart()
	for _, entry := range DemoEntries() {
		if err := chart.AddPlayer(entry.Position, entry.Player); err != nil {
			return nil, fmt.Errorf("add %s to %s: %w", entry.Player, entry.Position, err)
		}
	}

	return team, nil
}
