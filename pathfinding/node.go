package pathfinding

// node is the mutable search state of one grid position.
type node struct {
	row, col int
	tileID   int
	distance Cost
	visited  bool
	isWall   bool
	previous *Position
}

func (n *node) position() Position {
	return Position{Row: n.row, Col: n.col}
}

// nodeGrid owns every node of one search, indexed [row][col].
type nodeGrid struct {
	dims  Dimensions
	nodes [][]node
}

// newNodeGrid allocates one unvisited node per position.
// Positions with no input tile keep tile ID 0.
func newNodeGrid(dims Dimensions) *nodeGrid {
	nodes := make([][]node, dims.Rows)
	for row := range nodes {
		nodes[row] = make([]node, dims.Cols)
		for col := range nodes[row] {
			nodes[row][col] = node{
				row:      row,
				col:      col,
				distance: Infinity,
			}
		}
	}
	return &nodeGrid{dims: dims, nodes: nodes}
}

func (g *nodeGrid) at(p Position) *node {
	return &g.nodes[p.Row][p.Col]
}

// load copies a tile's identity into its node. Walls are pre-visited so they
// are never expanded.
func (g *nodeGrid) load(tile Tile) {
	n := g.at(Position{Row: tile.Row, Col: tile.Col})
	n.tileID = tile.ID
	if tile.Type == Wall {
		n.isWall = true
		n.visited = true
	}
}
