package pathfinding

import (
	"errors"
	"fmt"
	"strings"
)

// TileType is the category of an input tile.
type TileType int

const (
	Empty TileType = iota
	Wall
	Start
	End
)

var (
	ErrUnknownTileType  = errors.New("unknown tile type")
	ErrUnknownEventType = errors.New("unknown event type")
)

var tileTypeNames = map[TileType]string{
	Empty: "empty",
	Wall:  "wall",
	Start: "start",
	End:   "end",
}

// String returns the lowercase name of the tile type.
func (t TileType) String() string {
	if name, ok := tileTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TileType(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t TileType) MarshalText() ([]byte, error) {
	name, ok := tileTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTileType, int(t))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TileType) UnmarshalText(text []byte) error {
	value := strings.ToLower(strings.TrimSpace(string(text)))
	for tileType, name := range tileTypeNames {
		if name == value {
			*t = tileType
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTileType, value)
}

// Tile is an externally owned grid cell. The engine never mutates it.
type Tile struct {
	ID   int      `json:"id" bson:"id" yaml:"id"`
	Row  int      `json:"row" bson:"row" yaml:"row"`
	Col  int      `json:"col" bson:"col" yaml:"col"`
	Type TileType `json:"type" bson:"type" yaml:"type"`
}

// Position is a (row, col) coordinate in the grid.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Dimensions is the fixed size of the grid a search runs on.
type Dimensions struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Contains reports whether p lies inside the grid.
func (d Dimensions) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < d.Rows && p.Col >= 0 && p.Col < d.Cols
}

// Wrap maps any coordinate onto the torus.
func (d Dimensions) Wrap(row, col int) Position {
	row %= d.Rows
	if row < 0 {
		row += d.Rows
	}
	col %= d.Cols
	if col < 0 {
		col += d.Cols
	}
	return Position{Row: row, Col: col}
}

// EventType tells a consumer what happened to a tile.
type EventType int

const (
	// Visited marks a tile whose distance has been finalized.
	Visited EventType = iota
	// Checked marks a tile examined as a neighbor. Only emitted with WithCheckedEvents.
	Checked
)

// String returns the lowercase name of the event type.
func (e EventType) String() string {
	switch e {
	case Visited:
		return "visited"
	case Checked:
		return "checked"
	default:
		return fmt.Sprintf("EventType(%d)", int(e))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e EventType) MarshalText() ([]byte, error) {
	switch e {
	case Visited, Checked:
		return []byte(e.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEventType, int(e))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *EventType) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "visited":
		*e = Visited
	case "checked":
		*e = Checked
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEventType, string(text))
	}
	return nil
}

// Event is one entry of the visitation sequence.
type Event struct {
	TileID   int       `json:"tile_id"`
	Type     EventType `json:"event_type"`
	Distance Cost      `json:"distance"` // finalized distance for Visited, candidate for Checked
}
