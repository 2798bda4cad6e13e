package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
	"github.com/riskibarqy/depth-chart/internal/domain/sport"
	"github.com/riskibarqy/depth-chart/internal/platform/logging"
	"github.com/riskibarqy/depth-chart/internal/platform/resilience"
)

const defaultRenderWorkers = 4

type SportSummary struct {
	Name      string
	Positions []string
	TeamCount int
}

type TeamSummary struct {
	Sport string
	Name  string
}

// TeamChart is a rendered depth chart for one team.
type TeamChart struct {
	Sport     string
	Team      string
	Positions []depthchart.PositionDepth
	Text      string
}

type AddPlayerInput struct {
	Sport    string
	Team     string
	Position string
	Name     string
	Number   int
	// Rank is the zero-based slot to insert at. Nil appends.
	Rank *int
}

// PlayerRef locates a player on a team's chart. Name may be left empty, in
// which case it is resolved from the chart by jersey number.
type PlayerRef struct {
	Sport    string
	Team     string
	Position string
	Name     string
	Number   int
}

type DepthChartService struct {
	manager       *sport.Manager
	renderWorkers int
	renders       resilience.SingleFlight[[]TeamChart]
	logger        *logging.Logger
}

func NewDepthChartService(manager *sport.Manager, renderWorkers int, logger *logging.Logger) *DepthChartService {
	if logger == nil {
		logger = logging.Default()
	}
	if renderWorkers <= 0 {
		renderWorkers = defaultRenderWorkers
	}

	return &DepthChartService{
		manager:       manager,
		renderWorkers: renderWorkers,
		logger:        logger,
	}
}

func (s *DepthChartService) CreateSport(ctx context.Context, name string, positions []string) (SportSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DepthChartService.CreateSport")
	defer span.End()

	created, err := s.manager.CreateSport(strings.TrimSpace(name), positions)
	if err != nil {
		return SportSummary{}, mapDomainError(err)
	}

	s.logger.InfoContext(ctx, "sport created", "sport", created.Name(), "positions", len(created.ValidPositions()))
	return summarizeSport(created), nil
}

func (s *DepthChartService) ListSports(ctx context.Context) []SportSummary {
	_, span := startUsecaseSpan(ctx, "usecase.DepthChartService.ListSports")
	defer span.End()

	sports := s.manager.Sports()
	out := make([]SportSummary, 0, len(sports))
	for _, item := range sports {
		out = append(out, summarizeSport(item))
	}

	return out
}

func (s *DepthChartService) GetSport(ctx context.Context, name string) (SportSummary, error) {
	_, span := startUsecaseSpan(ctx, "usecase.DepthChartService.GetSport")
	defer span.End()

	item, err := s.getSport(name)
	if err != nil {
		return SportSummary{}, err
	}

	return summarizeSport(item), nil
}

func (s *DepthChartService) CreateTeam(ctx context.Context, sportName, teamName string) (TeamSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DepthChartService.CreateTeam")
	defer span.End()

	item, err := s.getSport(sportName)
	if err != nil {
		return TeamSummary{}, err
	}

	created, err := item.CreateTeam(strings.TrimSpace(teamName))
	if err != nil {
		return TeamSummary{}, mapDomainError(err)
	}

	s.logger.InfoContext(ctx, "team created", "sport", item.Name(), "team", created.Name())
	return TeamSummary{Sport: item.Name(), Name: created.Name()}, nil
}

func (s *DepthChartService) ListTeams(ctx context.Context, sportName string) ([]TeamSummary, error) {
	_, span := startUsecaseSpan(ctx, "usecase.DepthChartService.ListTeams")
	defer span.End()

	item, err := s.getSport(sportName)
	if err != nil {
		return nil, err
	}

	teams := item.Teams()
	out := make([]TeamSummary, 0, len(teams))
	for _, t := range teams {
		out = append(out, TeamSummary{Sport: item.Name(), Name: t.Name()})
	}

	return out, nil
}

func (s *DepthChartService) AddPlayer(ctx context.Context, input AddPlayerInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DepthChartService.AddPlayer")
	defer span.End()

	team, err := s.getTeam(input.Sport, input.Team)
	if err != nil {
		return err
	}

	player := depthchart.Player{Name: strings.TrimSpace(input.Name), Number: input.Number}
	chart := team.DepthChart()
	if input.Rank == nil {
		err = chart.AddPlayer(input.Position, player)
	} else {
		err = chart.AddPlayerAt(input.Position, player, *input.Rank)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "add player to depth chart failed",
			"sport", input.Sport,
			"team", input.Team,
			"position", input.Position,
			"number", input.Number,
			"error", err,
		)
		return mapDomainError(err)
	}

	s.logger.InfoContext(ctx, "player added to depth chart",
		"sport", input.Sport,
		"team", input.Team,
		"position", input.Position,
		"player", player.String(),
	)
	return nil
}

// RemovePlayer reports false without error when the player is not listed at
// the position.
func (s *DepthChartService) RemovePlayer(ctx context.Context, ref PlayerRef) (depthchart.Player, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DepthChartService.RemovePlayer")
	defer span.End()

	team, err := s.getTeam(ref.Sport, ref.Team)
	if err != nil {
		return depthchart.Player{}, false, err
	}

	player, found, err := resolvePlayer(team.DepthChart(), ref)
	if err != nil {
		return depthchart.Player{}, false, mapDomainError(err)
	}
	if !found {
		return depthchart.Player{}, false, nil
	}

	removed, ok, err := team.DepthChart().RemovePlayer(ref.Position, player)
	if err != nil {
		return depthchart.Player{}, false, mapDomainError(err)
	}
	if ok {
		s.logger.InfoContext(ctx, "player removed from depth chart",
			"sport", ref.Sport,
			"team", ref.Team,
			"position", ref.Position,
			"player", removed.String(),
		)
	}

	return removed, ok, nil
}

func (s *DepthChartService) GetBackups(ctx context.Context, ref PlayerRef) ([]depthchart.Player, error) {
	_, span := startUsecaseSpan(ctx, "usecase.DepthChartService.GetBackups")
	defer span.End()

	team, err := s.getTeam(ref.Sport, ref.Team)
	if err != nil {
		return nil, err
	}

	player, found, err := resolvePlayer(team.DepthChart(), ref)
	if err != nil {
		return nil, mapDomainError(err)
	}
	if !found {
		return []depthchart.Player{}, nil
	}

	backups, err := team.DepthChart().GetBackups(ref.Position, player)
	if err != nil {
		return nil, mapDomainError(err)
	}

	return backups, nil
}

func (s *DepthChartService) GetDepth(ctx context.Context, sportName, teamName, position string) ([]depthchart.Player, error) {
	_, span := startUsecaseSpan(ctx, "usecase.DepthChartService.GetDepth")
	defer span.End()

	team, err := s.getTeam(sportName, teamName)
	if err != nil {
		return nil, err
	}

	players, err := team.DepthChart().Depth(position)
	if err != nil {
		return nil, mapDomainError(err)
	}

	return players, nil
}

func (s *DepthChartService) GetFullDepthChart(ctx context.Context, sportName, teamName string) (string, error) {
	_, span := startUsecaseSpan(ctx, "usecase.DepthChartService.GetFullDepthChart")
	defer span.End()

	team, err := s.getTeam(sportName, teamName)
	if err != nil {
		return "", err
	}

	return team.DepthChart().GetFullDepthChart(), nil
}

func (s *DepthChartService) GetChart(ctx context.Context, sportName, teamName string) (TeamChart, error) {
	_, span := startUsecaseSpan(ctx, "usecase.DepthChartService.GetChart")
	defer span.End()

	item, err := s.getSport(sportName)
	if err != nil {
		return TeamChart{}, err
	}
	team, err := s.teamOf(item, teamName)
	if err != nil {
		return TeamChart{}, err
	}

	return chartOf(item.Name(), team), nil
}

// RenderSport renders every team of a sport concurrently. Results follow team
// registration order. Concurrent calls for the same sport share one render.
func (s *DepthChartService) RenderSport(ctx context.Context, sportName string) ([]TeamChart, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DepthChartService.RenderSport")
	defer span.End()

	item, err := s.getSport(sportName)
	if err != nil {
		return nil, err
	}

	charts, shared, err := s.renders.Do(item.Name(), func() ([]TeamChart, error) {
		return s.renderTeams(ctx, item)
	})
	if shared && isContextError(err) && ctx.Err() == nil {
		return s.renderTeams(ctx, item)
	}

	return charts, err
}

func (s *DepthChartService) renderTeams(ctx context.Context, item *sport.Sport) ([]TeamChart, error) {
	teams := item.Teams()
	out := make([]TeamChart, len(teams))
	if len(teams) == 0 {
		return out, nil
	}

	pool, err := ants.NewPool(min(s.renderWorkers, len(teams)))
	if err != nil {
		return nil, fmt.Errorf("create render pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, team := range teams {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if ctx.Err() != nil {
				return
			}
			out[i] = chartOf(item.Name(), team)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit render task team=%s: %w", team.Name(), err)
		}
	}
	workers.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "sport charts rendered", "sport", item.Name(), "teams", len(teams))
	return out, nil
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (s *DepthChartService) getSport(name string) (*sport.Sport, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: sport name is required", ErrInvalidInput)
	}

	item, exists, err := s.manager.Sport(name)
	if err != nil {
		return nil, mapDomainError(err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: sport=%s", ErrNotFound, name)
	}

	return item, nil
}

func (s *DepthChartService) getTeam(sportName, teamName string) (*sport.Team, error) {
	item, err := s.getSport(sportName)
	if err != nil {
		return nil, err
	}

	return s.teamOf(item, teamName)
}

func (s *DepthChartService) teamOf(item *sport.Sport, teamName string) (*sport.Team, error) {
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	team, exists, err := item.Team(teamName)
	if err != nil {
		return nil, mapDomainError(err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: team=%s sport=%s", ErrNotFound, teamName, item.Name())
	}

	return team, nil
}

// resolvePlayer fills in a missing name from the chart. The position is
// validated either way.
func resolvePlayer(chart *depthchart.DepthChart, ref PlayerRef) (depthchart.Player, bool, error) {
	name := strings.TrimSpace(ref.Name)
	if name != "" {
		return depthchart.Player{Name: name, Number: ref.Number}, true, nil
	}

	players, err := chart.Depth(ref.Position)
	if err != nil {
		return depthchart.Player{}, false, err
	}
	if ref.Number < 0 {
		return depthchart.Player{}, false, fmt.Errorf("%w: player number cannot be negative", depthchart.ErrInvalidArgument)
	}
	for _, p := range players {
		if p.Number == ref.Number {
			return p, true, nil
		}
	}

	return depthchart.Player{}, false, nil
}

func chartOf(sportName string, team *sport.Team) TeamChart {
	positions := team.DepthChart().Snapshot()
	return TeamChart{
		Sport:     sportName,
		Team:      team.Name(),
		Positions: positions,
		Text:      depthchart.RenderSnapshot(positions),
	}
}

func summarizeSport(item *sport.Sport) SportSummary {
	return SportSummary{
		Name:      item.Name(),
		Positions: item.ValidPositions(),
		TeamCount: len(item.Teams()),
	}
}

func mapDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, depthchart.ErrInvalidArgument):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case errors.Is(err, depthchart.ErrDuplicateState):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return err
	}
}
