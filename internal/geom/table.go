package geom

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var defaultLevelData []byte

// Table holds the movement paths available per level.
type Table struct {
	levels map[int][]Path
}

type filePath struct {
	Name   string      `yaml:"name"`
	Points [][]float64 `yaml:"points"`
}

type fileTable struct {
	Levels map[int][]filePath `yaml:"levels"`
}

// ParseTable decodes a YAML path table.
func ParseTable(data []byte) (*Table, error) {
	var raw fileTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode path table: %w", err)
	}
	if len(raw.Levels) == 0 {
		return nil, fmt.Errorf("path table has no levels")
	}
	table := &Table{levels: make(map[int][]Path, len(raw.Levels))}
	for level, paths := range raw.Levels {
		for _, fp := range paths {
			if len(fp.Points) < 2 {
				return nil, fmt.Errorf("path %q in level %d has fewer than 2 points", fp.Name, level)
			}
			points := make([]Point, len(fp.Points))
			for i, pair := range fp.Points {
				if len(pair) != 2 {
					return nil, fmt.Errorf("path %q in level %d has a malformed point", fp.Name, level)
				}
				points[i] = Point{X: pair[0], Y: pair[1]}
			}
			table.levels[level] = append(table.levels[level], NewPath(fp.Name, points))
		}
	}
	return table, nil
}

// DefaultTable returns the built-in per-level path table.
func DefaultTable() *Table {
	table, err := ParseTable(defaultLevelData)
	if err != nil {
		// The embedded data is part of the build; a decode failure is a bug.
		panic(err)
	}
	return table
}

// PathsForLevel returns the paths for a level, or nil when the level has no
// path data.
func (t *Table) PathsForLevel(level int) []Path {
	return t.levels[level]
}
