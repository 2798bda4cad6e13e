package sport

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
	"github.com/riskibarqy/depth-chart/internal/platform/registry"
)

// Sport groups teams that share one set of valid positions.
type Sport struct {
	name           string
	validPositions []string
	teams          *registry.Registry[*Team]
}

func NewSport(name string, validPositions []string) (*Sport, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.Wrap(depthchart.ErrInvalidArgument, "sport name is required")
	}

	positions := make([]string, 0, len(validPositions))
	for _, pos := range validPositions {
		pos = strings.TrimSpace(pos)
		if pos == "" || slices.Contains(positions, pos) {
			continue
		}
		positions = append(positions, pos)
	}

	return &Sport{
		name:           name,
		validPositions: positions,
		teams:          registry.New[*Team]("team"),
	}, nil
}

func (s *Sport) Name() string {
	return s.name
}

// ValidPositions returns a copy in declaration order.
func (s *Sport) ValidPositions() []string {
	return slices.Clone(s.validPositions)
}

func (s *Sport) AddTeam(team *Team) error {
	if team == nil {
		return errors.Wrap(depthchart.ErrInvalidArgument, "team is required")
	}

	return registryError(s.teams.Add(team))
}

// CreateTeam registers a new team whose chart accepts this sport's positions.
func (s *Sport) CreateTeam(name string) (*Team, error) {
	team, err := NewTeam(name, depthchart.New(s.validPositions))
	if err != nil {
		return nil, err
	}
	if err := s.AddTeam(team); err != nil {
		return nil, err
	}

	return team, nil
}

func (s *Sport) Team(name string) (*Team, bool, error) {
	team, ok, err := s.teams.Get(name)
	return team, ok, registryError(err)
}

func (s *Sport) Teams() []*Team {
	return s.teams.All()
}

// registryError tags registry failures with the matching depth chart error
// kind. Both sentinels stay reachable through errors.Is.
func registryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, registry.ErrDuplicate):
		return fmt.Errorf("%w: %w", depthchart.ErrDuplicateState, err)
	case errors.Is(err, registry.ErrInvalidName):
		return fmt.Errorf("%w: %w", depthchart.ErrInvalidArgument, err)
	default:
		return err
	}
}
