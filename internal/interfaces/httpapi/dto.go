package httpapi

import (
	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
	"github.com/riskibarqy/depth-chart/internal/usecase"
)

type createSportRequest struct {
	Name      string   `json:"name" validate:"required,max=50"`
	Positions []string `json:"positions" validate:"omitempty,dive,required,max=10"`
}

type createTeamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type addPlayerRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Number *int   `json:"number" validate:"required,min=0"`
	Rank   *int   `json:"rank" validate:"omitempty,min=0"`
}

type sportDTO struct {
	Name      string   `json:"name"`
	Positions []string `json:"positions"`
	TeamCount int      `json:"team_count"`
}

type teamDTO struct {
	Sport string `json:"sport"`
	Name  string `json:"name"`
}

type playerDTO struct {
	Name    string `json:"name"`
	Number  int    `json:"number"`
	Display string `json:"display"`
}

type positionDepthDTO struct {
	Position string      `json:"position"`
	Players  []playerDTO `json:"players"`
}

type teamChartDTO struct {
	Sport     string             `json:"sport"`
	Team      string             `json:"team"`
	Positions []positionDepthDTO `json:"positions"`
	Text      string             `json:"text"`
}

type positionPlayersDTO struct {
	Position string      `json:"position"`
	Players  []playerDTO `json:"players"`
}

type removePlayerDTO struct {
	Removed bool       `json:"removed"`
	Player  *playerDTO `json:"player,omitempty"`
}

func sportToDTO(s usecase.SportSummary) sportDTO {
	positions := s.Positions
	if positions == nil {
		positions = []string{}
	}
	return sportDTO{
		Name:      s.Name,
		Positions: positions,
		TeamCount: s.TeamCount,
	}
}

func teamToDTO(t usecase.TeamSummary) teamDTO {
	return teamDTO{Sport: t.Sport, Name: t.Name}
}

func playerToDTO(p depthchart.Player) playerDTO {
	return playerDTO{
		Name:    p.Name,
		Number:  p.Number,
		Display: p.String(),
	}
}

func playersToDTO(players []depthchart.Player) []playerDTO {
	out := make([]playerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, playerToDTO(p))
	}
	return out
}

func chartToDTO(c usecase.TeamChart) teamChartDTO {
	positions := make([]positionDepthDTO, 0, len(c.Positions))
	for _, depth := range c.Positions {
		positions = append(positions, positionDepthDTO{
			Position: depth.Position,
			Players:  playersToDTO(depth.Players),
		})
	}

	return teamChartDTO{
		Sport:     c.Sport,
		Team:      c.Team,
		Positions: positions,
		Text:      c.Text,
	}
}
