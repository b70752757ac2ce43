package pathfinding

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrNoEndTile         = errors.New("grid has no end tile")
	ErrUnknownStartTile  = errors.New("start tile not found in grid")
	ErrTileOutOfRange    = errors.New("tile position outside grid")
	ErrUnknownOutcome    = errors.New("unknown search outcome")
	ErrCostOverflow      = errors.New("grid too large for exact path costs")
)

// Outcome tells how a search terminated.
type Outcome int

const (
	// Exhausted means the frontier emptied before the end was popped.
	Exhausted Outcome = iota
	// Reached means the end position was popped.
	Reached
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Exhausted:
		return "exhausted"
	case Reached:
		return "reached"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	switch o {
	case Exhausted, Reached:
		return []byte(o.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownOutcome, int(o))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "reached":
		*o = Reached
	case "exhausted":
		*o = Exhausted
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutcome, text)
	}
	return nil
}

// Result contains the outcome of a search.
type Result struct {
	Events    []Event  `json:"events"`
	Outcome   Outcome  `json:"outcome"`
	Start     Position `json:"start"`
	End       Position `json:"end"`
	Finalized int      `json:"finalized"` // number of Visited events
}

// Engine runs searches on grids of one fixed size.
type Engine struct {
	dims Dimensions
	opts Options
}

// NewEngine creates an Engine for grids of the given dimensions.
func NewEngine(dims Dimensions, options ...Option) (*Engine, error) {
	if dims.Rows <= 0 || dims.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, dims.Rows, dims.Cols)
	}

	engineOptions := Options{}
	for _, option := range options {
		option(&engineOptions)
	}

	return &Engine{dims: dims, opts: engineOptions}, nil
}

// Dimensions returns the grid size the engine was built for.
func (e *Engine) Dimensions() Dimensions {
	return e.dims
}

// Search computes the finalization order from the tile identified by
// currentTileID toward the end tile.
func (e *Engine) Search(tiles []Tile, currentTileID int, aggressive bool) (Result, error) {
	stepper, err := e.NewStepper(tiles, currentTileID, aggressive)
	if err != nil {
		return Result{}, err
	}

	for {
		if _, done := stepper.Step(); done {
			return stepper.Result(), nil
		}
	}
}

// snapshot builds the node grid for tiles and resolves both endpoints.
func (e *Engine) snapshot(tiles []Tile, currentTileID int) (*nodeGrid, Position, Position, error) {
	grid := newNodeGrid(e.dims)
	var start, end Position
	startFound, endFound := false, false

	for _, tile := range tiles {
		pos := Position{Row: tile.Row, Col: tile.Col}
		if !e.dims.Contains(pos) {
			if e.opts.StrictEndpoints {
				return nil, start, end, fmt.Errorf("%w: tile %d at (%d, %d)", ErrTileOutOfRange, tile.ID, tile.Row, tile.Col)
			}
			continue
		}

		if tile.Type == End {
			end, endFound = pos, true
		}
		if tile.ID == currentTileID {
			start, startFound = pos, true
		}
		grid.load(tile)
	}

	if e.opts.StrictEndpoints {
		if !endFound {
			return nil, start, end, ErrNoEndTile
		}
		if !startFound {
			return nil, start, end, fmt.Errorf("%w: id %d", ErrUnknownStartTile, currentTileID)
		}
	}

	return grid, start, end, nil
}

// search is the state of one running search.
type search struct {
	grid          *nodeGrid
	frontier      *frontier
	model         costModel
	start, end    Position
	checkedEvents bool

	result Result
	done   bool
}

func newSearch(grid *nodeGrid, start, end Position, model costModel, checkedEvents bool) *search {
	s := &search{
		grid:          grid,
		frontier:      newFrontier(grid.dims.Rows * grid.dims.Cols),
		model:         model,
		start:         start,
		end:           end,
		checkedEvents: checkedEvents,
		result: Result{
			Events:  []Event{},
			Outcome: Exhausted,
			Start:   start,
			End:     end,
		},
	}

	startNode := grid.at(start)
	if !startNode.isWall {
		startNode.distance = Cost{}
	}
	s.frontier.push(startNode, Cost{})
	return s
}

// step pops until one node is finalized or the search terminates, and
// returns the events produced.
func (s *search) step() []Event {
	if s.done {
		return nil
	}

	for {
		entry, ok := s.frontier.pop()
		if !ok {
			s.finish(Exhausted)
			return nil
		}

		current := s.grid.at(entry.position)
		if current.visited || current.isWall {
			continue
		}

		if entry.position == s.end {
			s.finish(Reached)
			return nil
		}

		current.visited = true
		emitted := []Event{{TileID: current.tileID, Type: Visited, Distance: current.distance}}
		emitted = append(emitted, s.expand(current)...)

		s.result.Events = append(s.result.Events, emitted...)
		s.result.Finalized++
		return emitted
	}
}

// expand relaxes the eight wrapped neighbors of current.
func (s *search) expand(current *node) []Event {
	var checked []Event
	for _, offset := range neighborOffsets {
		pos := s.grid.dims.Wrap(current.row+offset.dRow, current.col+offset.dCol)
		neighbor := s.grid.at(pos)
		if neighbor.isWall {
			continue
		}

		candidate := s.model.advance(current.distance, s.model.stepCost(offset, pos))

		// Finalized distances are immutable.
		if neighbor.visited {
			continue
		}
		if s.checkedEvents {
			checked = append(checked, Event{TileID: neighbor.tileID, Type: Checked, Distance: candidate})
		}

		if candidate.Less(neighbor.distance) {
			from := current.position()
			neighbor.distance = candidate
			neighbor.previous = &from
			s.frontier.push(neighbor, candidate)
		}
	}
	return checked
}

func (s *search) finish(outcome Outcome) {
	s.done = true
	s.result.Outcome = outcome
}
