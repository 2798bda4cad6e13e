package depthchart

import (
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

// PositionDepth is an ordered copy of one position's depth, starter first.
type PositionDepth struct {
	Position string
	Players  []Player
}

// DepthChart ranks players per position. Index 0 of a position is the starter.
// Positions are rendered in the order they were first used.
type DepthChart struct {
	mu             sync.RWMutex
	validPositions map[string]struct{}
	chart          map[string][]Player
	order          []string
}

// New builds a chart restricted to validPositions. A nil or empty set accepts
// any non-blank position code.
func New(validPositions []string) *DepthChart {
	valid := make(map[string]struct{}, len(validPositions))
	for _, pos := range validPositions {
		if strings.TrimSpace(pos) == "" {
			continue
		}
		valid[pos] = struct{}{}
	}

	return &DepthChart{
		validPositions: valid,
		chart:          make(map[string][]Player),
	}
}

func (c *DepthChart) ValidPositions() []string {
	out := make([]string, 0, len(c.validPositions))
	for pos := range c.validPositions {
		out = append(out, pos)
	}
	slices.Sort(out)

	return out
}

// AddPlayer appends player to the bottom of position's depth.
func (c *DepthChart) AddPlayer(position string, player Player) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.insert(position, player, -1)
}

// AddPlayerAt inserts player at rank, shifting the players at and below rank
// down by one. A rank past the end appends.
func (c *DepthChart) AddPlayerAt(position string, player Player, rank int) error {
	if rank < 0 {
		return errors.Wrapf(ErrInvalidArgument, "rank cannot be negative: %d", rank)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.insert(position, player, rank)
}

func (c *DepthChart) insert(position string, player Player, rank int) error {
	if err := c.validate(position, player); err != nil {
		return err
	}

	players := c.chart[position]
	if indexOf(players, player) >= 0 {
		return errors.Wrapf(ErrDuplicateState, "player #%d already exists at position %q", player.Number, position)
	}

	if _, seen := c.chart[position]; !seen {
		c.order = append(c.order, position)
	}

	if rank < 0 || rank >= len(players) {
		c.chart[position] = append(players, player)
		return nil
	}
	c.chart[position] = slices.Insert(players, rank, player)

	return nil
}

// RemovePlayer removes player from position. It reports false without error
// when the position or player is not on the chart.
func (c *DepthChart) RemovePlayer(position string, player Player) (Player, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.validate(position, player); err != nil {
		return Player{}, false, err
	}

	players, ok := c.chart[position]
	if !ok {
		return Player{}, false, nil
	}
	idx := indexOf(players, player)
	if idx < 0 {
		return Player{}, false, nil
	}

	removed := players[idx]
	c.chart[position] = slices.Delete(players, idx, idx+1)

	return removed, true, nil
}

// GetBackups lists every player ranked below player at position, nearest
// backup first. The result never aliases chart storage.
func (c *DepthChart) GetBackups(position string, player Player) ([]Player, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.validate(position, player); err != nil {
		return nil, err
	}

	players := c.chart[position]
	idx := indexOf(players, player)
	if idx < 0 || idx == len(players)-1 {
		return []Player{}, nil
	}

	return slices.Clone(players[idx+1:]), nil
}

// Depth returns a copy of the full ordering at position.
func (c *DepthChart) Depth(position string) ([]Player, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.validatePosition(position); err != nil {
		return nil, err
	}

	players := c.chart[position]
	out := make([]Player, len(players))
	copy(out, players)

	return out, nil
}

// Snapshot copies every non-empty position in render order.
func (c *DepthChart) Snapshot() []PositionDepth {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]PositionDepth, 0, len(c.order))
	for _, pos := range c.order {
		players := c.chart[pos]
		if len(players) == 0 {
			continue
		}
		out = append(out, PositionDepth{
			Position: pos,
			Players:  slices.Clone(players),
		})
	}

	return out
}

func (c *DepthChart) validate(position string, player Player) error {
	if err := c.validatePosition(position); err != nil {
		return err
	}
	if err := player.Validate(); err != nil {
		return err
	}

	return nil
}

func (c *DepthChart) validatePosition(position string) error {
	if strings.TrimSpace(position) == "" {
		return errors.Wrap(ErrInvalidArgument, "position is required")
	}
	if len(c.validPositions) == 0 {
		return nil
	}
	if _, ok := c.validPositions[position]; !ok {
		return errors.Wrapf(ErrInvalidArgument, "invalid position %q for this sport", position)
	}

	return nil
}

// indexOf matches on jersey number only.
func indexOf(players []Player, player Player) int {
	return slices.IndexFunc(players, func(p Player) bool {
		return p.Number == player.Number
	})
}
