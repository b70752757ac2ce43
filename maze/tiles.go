package maze

import "github.com/beka-birhanu/vinom-pathfinder/pathfinding"

// Dimensions returns the size of the tile grid produced by Tiles.
// Every cell and every wall between cells becomes one tile, plus a border.
func (m *WillsonMaze) Dimensions() pathfinding.Dimensions {
	return pathfinding.Dimensions{Rows: 2*m.Height + 1, Cols: 2*m.Width + 1}
}

// CellTile maps a maze cell to the row and column of its tile.
func CellTile(pos CellPosition) pathfinding.Position {
	return pathfinding.Position{Row: 2*pos.Row + 1, Col: 2*pos.Col + 1}
}

// Tiles converts the maze to a tile grid. The top-left cell is the start and
// the bottom-right cell is the end. Tile IDs are row*cols+col.
func (m *WillsonMaze) Tiles() []pathfinding.Tile {
	dims := m.Dimensions()
	types := make([][]pathfinding.TileType, dims.Rows)
	for row := range types {
		types[row] = make([]pathfinding.TileType, dims.Cols)
		for col := range types[row] {
			types[row][col] = pathfinding.Wall
		}
	}

	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			pos := CellTile(CellPosition{Row: row, Col: col})
			types[pos.Row][pos.Col] = pathfinding.Empty

			cell := m.Grid[row][col]
			if !cell.EastWall {
				types[pos.Row][pos.Col+1] = pathfinding.Empty
			}
			if !cell.SouthWall {
				types[pos.Row+1][pos.Col] = pathfinding.Empty
			}
		}
	}

	start := CellTile(CellPosition{Row: 0, Col: 0})
	end := CellTile(CellPosition{Row: m.Height - 1, Col: m.Width - 1})
	types[start.Row][start.Col] = pathfinding.Start
	types[end.Row][end.Col] = pathfinding.End

	tiles := make([]pathfinding.Tile, 0, dims.Rows*dims.Cols)
	for row := 0; row < dims.Rows; row++ {
		for col := 0; col < dims.Cols; col++ {
			tiles = append(tiles, pathfinding.Tile{
				ID:   row*dims.Cols + col,
				Row:  row,
				Col:  col,
				Type: types[row][col],
			})
		}
	}
	return tiles
}
