// Package domain holds the stored entities of the pathfinder service.
package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/google/uuid"
)

var (
	ErrGridNotFound       = errors.New("grid not found")
	ErrGridDimensions     = errors.New("grid dimensions out of range")
	ErrDuplicateTileID    = errors.New("duplicate tile id")
	ErrDuplicatePosition  = errors.New("duplicate tile position")
	ErrTileOutsideGrid    = errors.New("tile outside grid")
	ErrStartTileCount     = errors.New("grid must have exactly one start tile")
	ErrEndTileCount       = errors.New("grid must have exactly one end tile")
	ErrIncompleteGrid     = errors.New("grid must have a tile at every position")
	ErrStartTileNotInGrid = errors.New("start tile not in grid")
)

// Grid is a stored grid layout.
type Grid struct {
	ID        uuid.UUID          `bson:"_id"`
	OwnerID   uuid.UUID          `bson:"ownerId"`
	Name      string             `bson:"name"`
	Rows      int                `bson:"rows"`
	Cols      int                `bson:"cols"`
	Tiles     []pathfinding.Tile `bson:"tiles"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// Dimensions returns the grid size.
func (g *Grid) Dimensions() pathfinding.Dimensions {
	return pathfinding.Dimensions{Rows: g.Rows, Cols: g.Cols}
}

// StartTileID returns the id of the grid's start tile.
func (g *Grid) StartTileID() (int, error) {
	for _, tile := range g.Tiles {
		if tile.Type == pathfinding.Start {
			return tile.ID, nil
		}
	}
	return 0, ErrStartTileNotInGrid
}

// HasTile reports whether a tile with the given id exists.
func (g *Grid) HasTile(id int) bool {
	for _, tile := range g.Tiles {
		if tile.ID == id {
			return true
		}
	}
	return false
}

// Validate checks that the grid is complete and well formed. maxDimension
// bounds both rows and cols.
func (g *Grid) Validate(maxDimension int) error {
	if g.Rows <= 0 || g.Cols <= 0 || g.Rows > maxDimension || g.Cols > maxDimension {
		return fmt.Errorf("%w: %dx%d (max %d)", ErrGridDimensions, g.Rows, g.Cols, maxDimension)
	}

	ids := make(map[int]struct{}, len(g.Tiles))
	positions := make(map[pathfinding.Position]struct{}, len(g.Tiles))
	starts, ends := 0, 0
	dims := g.Dimensions()

	for _, tile := range g.Tiles {
		pos := pathfinding.Position{Row: tile.Row, Col: tile.Col}
		if !dims.Contains(pos) {
			return fmt.Errorf("%w: tile %d at (%d, %d)", ErrTileOutsideGrid, tile.ID, tile.Row, tile.Col)
		}
		if _, dup := ids[tile.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateTileID, tile.ID)
		}
		if _, dup := positions[pos]; dup {
			return fmt.Errorf("%w: (%d, %d)", ErrDuplicatePosition, tile.Row, tile.Col)
		}
		ids[tile.ID] = struct{}{}
		positions[pos] = struct{}{}

		switch tile.Type {
		case pathfinding.Start:
			starts++
		case pathfinding.End:
			ends++
		}
	}

	if len(g.Tiles) != g.Rows*g.Cols {
		return fmt.Errorf("%w: %d of %d", ErrIncompleteGrid, len(g.Tiles), g.Rows*g.Cols)
	}
	if starts != 1 {
		return ErrStartTileCount
	}
	if ends != 1 {
		return ErrEndTileCount
	}
	return nil
}
