/*
Package maze generates rectangular mazes and converts them into tile grids
for the pathfinding engine.

Mazes are carved with Wilson's algorithm from a caller-supplied random
source, so a fixed seed always yields the same layout.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

const (
	maxMazeDimension = 50
)

var (
	// Directions lists the moves in a fixed order so a seeded generator is reproducible.
	Directions = []struct {
		Name  string
		Delta CellPosition
	}{
		{Name: "North", Delta: CellPosition{Row: -1, Col: 0}},
		{Name: "South", Delta: CellPosition{Row: 1, Col: 0}},
		{Name: "East", Delta: CellPosition{Row: 0, Col: 1}},
		{Name: "West", Delta: CellPosition{Row: 0, Col: -1}},
	}

	ErrInvalidDimensions = errors.New("invalid maze dimensions")
)

// WillsonMaze represents a rectangular maze of cells with walls.
type WillsonMaze struct {
	Width  int       // Width of the maze (number of columns)
	Height int       // Height of the maze (number of rows)
	Grid   [][]*Cell // 2D grid of cells forming the maze
	rng    *rand.Rand
}

// New initializes a new maze of the given dimensions and generates its layout.
// A maze needs at least two cells so its start and end differ.
func New(width, height int, rng *rand.Rand) (*WillsonMaze, error) {
	if min(width, height) <= 0 || max(width, height) > maxMazeDimension || width*height < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	grid := make([][]*Cell, height)
	for i := range grid {
		grid[i] = make([]*Cell, width)
		for j := range grid[i] {
			grid[i][j] = &Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	maze := &WillsonMaze{
		Width:  width,
		Height: height,
		Grid:   grid,
		rng:    rng,
	}
	maze.generateMaze()
	return maze, nil
}

// randomCellPosition generates a random position within the maze.
func (m *WillsonMaze) randomCellPosition() CellPosition {
	return CellPosition{Row: m.rng.Intn(m.Height), Col: m.rng.Intn(m.Width)}
}

// randomUnvisitedCellPosition selects a random position that has not been visited.
func (m *WillsonMaze) randomUnvisitedCellPosition(visited map[CellPosition]struct{}) CellPosition {
	for {
		pos := m.randomCellPosition()
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// neighbors finds all in-bound moves from a given cell position.
func (m *WillsonMaze) neighbors(pos CellPosition) []Move {
	var result []Move
	for _, dir := range Directions {
		neighbor := CellPosition{Row: pos.Row + dir.Delta.Row, Col: pos.Col + dir.Delta.Col}
		if m.InBound(neighbor.Row, neighbor.Col) {
			result = append(result, Move{From: pos, To: neighbor, Direction: dir.Name})
		}
	}
	return result
}

// InBound reports whether (row, col) is a cell of the maze.
func (m *WillsonMaze) InBound(row, col int) bool {
	return row >= 0 && row < m.Height && col >= 0 && col < m.Width
}

// openWall removes the wall between two adjacent cells in the specified direction.
func (m *WillsonMaze) openWall(move Move) {
	from := m.Grid[move.From.Row][move.From.Col]
	to := m.Grid[move.To.Row][move.To.Col]
	switch move.Direction {
	case "North":
		from.NorthWall = false
		to.SouthWall = false
	case "South":
		from.SouthWall = false
		to.NorthWall = false
	case "East":
		from.EastWall = false
		to.WestWall = false
	case "West":
		from.WestWall = false
		to.EastWall = false
	}
}

// randomWalk walks from an unvisited cell until it hits the visited set.
// Only the last exit taken from each cell is kept, which erases loops.
func (m *WillsonMaze) randomWalk(visited map[CellPosition]struct{}) []Move {
	cell := m.randomUnvisitedCellPosition(visited)
	exits := make(map[CellPosition]Move)
	var order []CellPosition

	for {
		neighbors := m.neighbors(cell)
		randomNeighbor := neighbors[m.rng.Intn(len(neighbors))]
		if _, seen := exits[cell]; !seen {
			order = append(order, cell)
		}
		exits[cell] = randomNeighbor
		if _, included := visited[randomNeighbor.To]; included {
			break
		}
		cell = randomNeighbor.To
	}

	moves := make([]Move, 0, len(order))
	for _, pos := range order {
		moves = append(moves, exits[pos])
	}
	return moves
}

// generateMaze carves passages until every cell is part of the maze.
func (m *WillsonMaze) generateMaze() {
	visited := make(map[CellPosition]struct{})
	visited[m.randomCellPosition()] = struct{}{}

	for len(visited) < m.Width*m.Height {
		for _, move := range m.randomWalk(visited) {
			m.openWall(move)
			visited[move.From] = struct{}{}
		}
	}
}

// String provides a textual representation of the maze.
func (m *WillsonMaze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.Width) + "\n")

	for row := 0; row < m.Height; row++ {
		cellRow := "|"
		for col := 0; col < m.Width; col++ {
			if m.Grid[row][col].EastWall {
				cellRow += "   |"
			} else {
				cellRow += "    "
			}
		}
		output.WriteString(cellRow + "\n")

		wallRow := "+"
		for col := 0; col < m.Width; col++ {
			if m.Grid[row][col].SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
