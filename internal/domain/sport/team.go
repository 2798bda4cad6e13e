package sport

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
)

// Team is a club inside a sport. It exclusively owns one depth chart.
type Team struct {
	name  string
	chart *depthchart.DepthChart
}

func NewTeam(name string, chart *depthchart.DepthChart) (*Team, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.Wrap(depthchart.ErrInvalidArgument, "team name is required")
	}
	if chart == nil {
		return nil, errors.Wrap(depthchart.ErrInvalidArgument, "team depth chart is required")
	}

	return &Team{name: name, chart: chart}, nil
}

func (t *Team) Name() string {
	return t.name
}

func (t *Team) DepthChart() *depthchart.DepthChart {
	return t.chart
}
