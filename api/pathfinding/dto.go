// Package pathfindingapi exposes searches, stored grids and playbacks over HTTP.
package pathfindingapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/google/uuid"
)

// SearchRequest is an ad-hoc search over the supplied tiles.
type SearchRequest struct {
	Rows          int                `json:"rows" binding:"required,min=1"`
	Cols          int                `json:"cols" binding:"required,min=1"`
	Tiles         []pathfinding.Tile `json:"tiles" binding:"required"`
	CurrentTileID int                `json:"current_tile_id"`
	Aggressive    bool               `json:"aggressive"`
}

// GridSearchRequest searches a stored grid. Without current_tile_id the
// search starts from the grid's start tile.
type GridSearchRequest struct {
	CurrentTileID *int `json:"current_tile_id"`
	Aggressive    bool `json:"aggressive"`
}

// CreateGridRequest stores a grid layout.
type CreateGridRequest struct {
	Name  string             `json:"name" binding:"required"`
	Rows  int                `json:"rows" binding:"required,min=1"`
	Cols  int                `json:"cols" binding:"required,min=1"`
	Tiles []pathfinding.Tile `json:"tiles" binding:"required"`
}

// GenerateGridRequest carves a maze of width x height cells.
type GenerateGridRequest struct {
	Name   string `json:"name" binding:"required"`
	Width  int    `json:"width" binding:"required,min=1"`
	Height int    `json:"height" binding:"required,min=1"`
	Seed   int64  `json:"seed"`
}

// GridResponse is a stored grid.
type GridResponse struct {
	ID        uuid.UUID          `json:"id"`
	OwnerID   uuid.UUID          `json:"owner_id"`
	Name      string             `json:"name"`
	Rows      int                `json:"rows"`
	Cols      int                `json:"cols"`
	Tiles     []pathfinding.Tile `json:"tiles"`
	CreatedAt time.Time          `json:"created_at"`
}

func newGridResponse(g *dmn.Grid) *GridResponse {
	return &GridResponse{
		ID:        g.ID,
		OwnerID:   g.OwnerID,
		Name:      g.Name,
		Rows:      g.Rows,
		Cols:      g.Cols,
		Tiles:     g.Tiles,
		CreatedAt: g.CreatedAt,
	}
}

// PlaybackResponse describes a queued playback.
type PlaybackResponse struct {
	ID        uuid.UUID           `json:"playback_id"`
	Outcome   pathfinding.Outcome `json:"outcome"`
	Total     int                 `json:"total"`
	BatchSize int                 `json:"batch_size"`
	TickMS    int64               `json:"tick_ms"`
}

// PlaybackBatchResponse is one drained batch.
type PlaybackBatchResponse struct {
	Events    []pathfinding.Event `json:"events"`
	Remaining int64               `json:"remaining"`
}
