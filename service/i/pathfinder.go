package i

import (
	"context"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/google/uuid"
)

// SearchRequest is an ad-hoc search over caller supplied tiles.
type SearchRequest struct {
	Dimensions    pathfinding.Dimensions
	Tiles         []pathfinding.Tile
	CurrentTileID int
	Aggressive    bool
}

// Pathfinder runs searches and manages stored grids.
type Pathfinder interface {
	Search(ctx context.Context, request SearchRequest) (pathfinding.Result, error)
	SearchGrid(ctx context.Context, gridID uuid.UUID, currentTileID *int, aggressive bool) (pathfinding.Result, error)
	SaveGrid(ctx context.Context, grid *dmn.Grid) error
	Grid(ctx context.Context, gridID uuid.UUID) (*dmn.Grid, error)
	GenerateGrid(ctx context.Context, ownerID uuid.UUID, name string, width, height int, seed int64) (*dmn.Grid, error)
}

// PlaybackInfo describes a queued playback.
type PlaybackInfo struct {
	ID        uuid.UUID
	Total     int
	BatchSize int
	Tick      time.Duration
}

// PlaybackBatch is one drained batch of a playback.
type PlaybackBatch struct {
	Events    []pathfinding.Event
	Remaining int64
}

// Playback queues event sequences and hands them out in batches.
type Playback interface {
	Start(ctx context.Context, events []pathfinding.Event) (PlaybackInfo, error)
	Next(ctx context.Context, id uuid.UUID) (PlaybackBatch, error)
}

// SearchRecorder records search metrics.
type SearchRecorder interface {
	ObserveSearch(aggressive bool, outcome pathfinding.Outcome, finalized int, elapsed time.Duration)
	ObservePlaybackBatch(size int)
}
