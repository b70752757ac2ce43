// Package layout reads and writes grid layouts as YAML files.
//
// A layout file draws the grid one string per row:
//
//	name: corridor
//	aggressive: false
//	rows:
//	  - "S..#"
//	  - ".#.E"
//
// '.' is empty, '#' a wall, 'S' the start and 'E' the end. Tile IDs are
// assigned row-major as row*cols+col.
package layout

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"gopkg.in/yaml.v3"
)

const (
	emptyGlyph = '.'
	wallGlyph  = '#'
	startGlyph = 'S'
	endGlyph   = 'E'
)

var (
	ErrEmptyLayout  = errors.New("layout has no rows")
	ErrRaggedLayout = errors.New("layout rows differ in length")
	ErrUnknownGlyph = errors.New("unknown layout glyph")
	ErrNoStart      = errors.New("layout has no start tile")
)

// File is the YAML document of a layout.
type File struct {
	Name       string   `yaml:"name,omitempty"`
	Aggressive bool     `yaml:"aggressive"`
	Rows       []string `yaml:"rows"`
}

// Layout is a parsed grid ready for a search.
type Layout struct {
	Name       string
	Aggressive bool
	Dims       pathfinding.Dimensions
	Tiles      []pathfinding.Tile
	StartID    int
}

// Decode reads a YAML layout file.
func Decode(r io.Reader) (*Layout, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding layout: %w", err)
	}

	l, err := Parse(file.Rows)
	if err != nil {
		return nil, err
	}
	l.Name = file.Name
	l.Aggressive = file.Aggressive
	return l, nil
}

// Parse builds a layout from glyph rows.
func Parse(rows []string) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}

	dims := pathfinding.Dimensions{Rows: len(rows), Cols: len(rows[0])}
	l := &Layout{Dims: dims, StartID: -1}
	for row, line := range rows {
		if len(line) != dims.Cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedLayout, row, len(line), dims.Cols)
		}
		for col := 0; col < len(line); col++ {
			tileType, err := glyphType(line[col])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", row, col, err)
			}

			id := row*dims.Cols + col
			if tileType == pathfinding.Start {
				l.StartID = id
			}
			l.Tiles = append(l.Tiles, pathfinding.Tile{ID: id, Row: row, Col: col, Type: tileType})
		}
	}

	if l.StartID < 0 {
		return nil, ErrNoStart
	}
	return l, nil
}

// FromTiles builds a layout from tiles of a grid of the given size.
// Positions without a tile are drawn empty.
func FromTiles(name string, dims pathfinding.Dimensions, tiles []pathfinding.Tile) *Layout {
	l := &Layout{Name: name, Dims: dims, Tiles: tiles, StartID: -1}
	for _, tile := range tiles {
		if tile.Type == pathfinding.Start {
			l.StartID = tile.ID
		}
	}
	return l
}

// Rows draws the layout as glyph rows.
func (l *Layout) Rows() []string {
	grid := l.canvas()
	rows := make([]string, len(grid))
	for i, line := range grid {
		rows[i] = string(line)
	}
	return rows
}

// Encode writes the layout as a YAML file.
func (l *Layout) Encode(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(File{Name: l.Name, Aggressive: l.Aggressive, Rows: l.Rows()}); err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}
	return encoder.Close()
}

func (l *Layout) canvas() [][]byte {
	grid := make([][]byte, l.Dims.Rows)
	for row := range grid {
		grid[row] = []byte(strings.Repeat(string(emptyGlyph), l.Dims.Cols))
	}
	for _, tile := range l.Tiles {
		if l.Dims.Contains(pathfinding.Position{Row: tile.Row, Col: tile.Col}) {
			grid[tile.Row][tile.Col] = typeGlyph(tile.Type)
		}
	}
	return grid
}

func glyphType(glyph byte) (pathfinding.TileType, error) {
	switch glyph {
	case emptyGlyph:
		return pathfinding.Empty, nil
	case wallGlyph:
		return pathfinding.Wall, nil
	case startGlyph:
		return pathfinding.Start, nil
	case endGlyph:
		return pathfinding.End, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGlyph, glyph)
	}
}

func typeGlyph(t pathfinding.TileType) byte {
	switch t {
	case pathfinding.Wall:
		return wallGlyph
	case pathfinding.Start:
		return startGlyph
	case pathfinding.End:
		return endGlyph
	default:
		return emptyGlyph
	}
}
