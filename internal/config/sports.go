package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
	"gopkg.in/yaml.v3"
)

// SportDefinition declares a sport and the positions its depth charts accept.
type SportDefinition struct {
	Name      string   `yaml:"name"`
	Positions []string `yaml:"positions"`
}

type sportCatalog struct {
	Sports []SportDefinition `yaml:"sports"`
}

// DefaultSports is the catalog used when no sport source is configured.
func DefaultSports() []SportDefinition {
	return []SportDefinition{
		{Name: depthchart.SportNFL, Positions: depthchart.NFLPositions()},
	}
}

func loadSports(path, inline string) ([]SportDefinition, error) {
	var out []SportDefinition

	if path != "" {
		fromFile, err := readSportsFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, fromFile...)
	}

	if strings.TrimSpace(inline) != "" {
		fromEnv, err := parseSportPositions(inline)
		if err != nil {
			return nil, fmt.Errorf("parse DEFAULT_SPORT_POSITIONS: %w", err)
		}
		out = append(out, fromEnv...)
	}

	if len(out) == 0 {
		return DefaultSports(), nil
	}

	seen := make(map[string]struct{}, len(out))
	for _, def := range out {
		if _, dup := seen[def.Name]; dup {
			return nil, fmt.Errorf("sport %q is declared more than once", def.Name)
		}
		seen[def.Name] = struct{}{}
	}

	return out, nil
}

func readSportsFile(path string) ([]SportDefinition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read SPORTS_FILE: %w", err)
	}

	var catalog sportCatalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("decode SPORTS_FILE %s: %w", path, err)
	}

	out := make([]SportDefinition, 0, len(catalog.Sports))
	for i, def := range catalog.Sports {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return nil, fmt.Errorf("SPORTS_FILE %s: sport #%d has no name", path, i+1)
		}
		out = append(out, SportDefinition{Name: name, Positions: trimAll(def.Positions)})
	}

	return out, nil
}

// parseSportPositions reads "NFL:QB|RB|WR,NHL:C|LW|RW|D|G". A sport with no
// positions ("RUGBY:") accepts any position code.
func parseSportPositions(raw string) ([]SportDefinition, error) {
	var out []SportDefinition
	for _, item := range splitCSV(raw) {
		segments := strings.SplitN(item, ":", 2)
		if len(segments) != 2 {
			return nil, fmt.Errorf("invalid sport item %q, expected name:POS|POS", item)
		}

		name := strings.TrimSpace(segments[0])
		if name == "" {
			return nil, fmt.Errorf("empty sport name in item %q", item)
		}
		out = append(out, SportDefinition{
			Name:      name,
			Positions: trimAll(strings.Split(segments[1], "|")),
		})
	}

	return out, nil
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
