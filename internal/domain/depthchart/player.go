package depthchart

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Player is a rostered athlete identified by display name and jersey number.
type Player struct {
	Name   string
	Number int
}

func NewPlayer(name string, number int) (Player, error) {
	p := Player{Name: name, Number: number}
	if err := p.Validate(); err != nil {
		return Player{}, err
	}

	return p, nil
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.Wrap(ErrInvalidArgument, "player name is required")
	}
	if p.Number < 0 {
		return errors.Wrapf(ErrInvalidArgument, "player number cannot be negative: %d", p.Number)
	}

	return nil
}

// String renders the player as "(#12, Tom Brady)".
func (p Player) String() string {
	return "(#" + strconv.Itoa(p.Number) + ", " + p.Name + ")"
}
