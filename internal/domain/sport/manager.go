package sport

import (
	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
	"github.com/riskibarqy/depth-chart/internal/platform/registry"
)

// Manager is the top-level registry of sports.
type Manager struct {
	sports *registry.Registry[*Sport]
}

func NewManager() *Manager {
	return &Manager{sports: registry.New[*Sport]("sport")}
}

func (m *Manager) AddSport(s *Sport) error {
	if s == nil {
		return errors.Wrap(depthchart.ErrInvalidArgument, "sport is required")
	}

	return registryError(m.sports.Add(s))
}

func (m *Manager) CreateSport(name string, validPositions []string) (*Sport, error) {
	s, err := NewSport(name, validPositions)
	if err != nil {
		return nil, err
	}
	if err := m.AddSport(s); err != nil {
		return nil, err
	}

	return s, nil
}

func (m *Manager) Sport(name string) (*Sport, bool, error) {
	s, ok, err := m.sports.Get(name)
	return s, ok, registryError(err)
}

func (m *Manager) Sports() []*Sport {
	return m.sports.All()
}
