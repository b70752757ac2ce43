package layout

import (
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
)

const (
	visitedGlyph = 'o'
	checkedGlyph = '+'
)

// Render draws the layout with finalized tiles marked 'o' and tiles that were
// only checked marked '+'. Start and end keep their glyphs.
func Render(l *Layout, events []pathfinding.Event) string {
	grid := l.canvas()

	positions := make(map[int]pathfinding.Position, len(l.Tiles))
	for _, tile := range l.Tiles {
		positions[tile.ID] = pathfinding.Position{Row: tile.Row, Col: tile.Col}
	}

	for _, event := range events {
		pos, ok := positions[event.TileID]
		if !ok || !l.Dims.Contains(pos) {
			continue
		}

		glyph := &grid[pos.Row][pos.Col]
		if *glyph == startGlyph || *glyph == endGlyph {
			continue
		}
		switch event.Type {
		case pathfinding.Visited:
			*glyph = visitedGlyph
		case pathfinding.Checked:
			if *glyph != visitedGlyph {
				*glyph = checkedGlyph
			}
		}
	}

	var output strings.Builder
	for _, line := range grid {
		output.Write(line)
		output.WriteByte('\n')
	}
	return output.String()
}
