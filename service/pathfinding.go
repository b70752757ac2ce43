package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const defaultMaxDimension = 200

var (
	ErrGridTooLarge = errors.New("grid exceeds the maximum dimension")
)

// PathfinderConfig holds the dependencies of a Pathfinding service.
type PathfinderConfig struct {
	GridRepo      i.GridRepo
	Recorder      i.SearchRecorder
	Logger        i.Logger
	MaxDimension  int
	EngineOptions []pathfinding.Option
}

// Pathfinding runs searches over ad-hoc and stored grids.
type Pathfinding struct {
	gridRepo      i.GridRepo
	recorder      i.SearchRecorder
	logger        i.Logger
	maxDimension  int
	engineOptions []pathfinding.Option
}

var _ i.Pathfinder = &Pathfinding{}

// NewPathfinding creates a Pathfinding service.
func NewPathfinding(c *PathfinderConfig) (*Pathfinding, error) {
	if c.GridRepo == nil || c.Recorder == nil || c.Logger == nil {
		return nil, errors.New("pathfinding service requires a grid repo, recorder and logger")
	}

	maxDimension := c.MaxDimension
	if maxDimension <= 0 {
		maxDimension = defaultMaxDimension
	}

	return &Pathfinding{
		gridRepo:      c.GridRepo,
		recorder:      c.Recorder,
		logger:        c.Logger,
		maxDimension:  maxDimension,
		engineOptions: c.EngineOptions,
	}, nil
}

// Search runs one search over the tiles of the request.
func (p *Pathfinding) Search(ctx context.Context, request i.SearchRequest) (pathfinding.Result, error) {
	dims := request.Dimensions
	if dims.Rows > p.maxDimension || dims.Cols > p.maxDimension {
		return pathfinding.Result{}, fmt.Errorf("%w: %dx%d (max %d)", ErrGridTooLarge, dims.Rows, dims.Cols, p.maxDimension)
	}

	engine, err := pathfinding.NewEngine(dims, p.engineOptions...)
	if err != nil {
		return pathfinding.Result{}, err
	}

	began := time.Now()
	result, err := engine.Search(request.Tiles, request.CurrentTileID, request.Aggressive)
	if err != nil {
		p.logger.Warning(fmt.Sprintf("search rejected: %s", err))
		return pathfinding.Result{}, err
	}

	p.recorder.ObserveSearch(request.Aggressive, result.Outcome, result.Finalized, time.Since(began))
	p.logger.Info(fmt.Sprintf("search on %dx%d grid %s after %d finalized tiles (aggressive=%t)",
		dims.Rows, dims.Cols, result.Outcome, result.Finalized, request.Aggressive))
	return result, nil
}

// SearchGrid searches a stored grid. A nil currentTileID starts from the
// grid's start tile.
func (p *Pathfinding) SearchGrid(ctx context.Context, gridID uuid.UUID, currentTileID *int, aggressive bool) (pathfinding.Result, error) {
	grid, err := p.gridRepo.ByID(ctx, gridID)
	if err != nil {
		return pathfinding.Result{}, err
	}

	var startID int
	if currentTileID == nil {
		if startID, err = grid.StartTileID(); err != nil {
			return pathfinding.Result{}, err
		}
	} else {
		if !grid.HasTile(*currentTileID) {
			return pathfinding.Result{}, fmt.Errorf("%w: id %d", pathfinding.ErrUnknownStartTile, *currentTileID)
		}
		startID = *currentTileID
	}

	return p.Search(ctx, i.SearchRequest{
		Dimensions:    grid.Dimensions(),
		Tiles:         grid.Tiles,
		CurrentTileID: startID,
		Aggressive:    aggressive,
	})
}

// SaveGrid validates and stores a grid, assigning an id and creation time
// when missing.
func (p *Pathfinding) SaveGrid(ctx context.Context, grid *dmn.Grid) error {
	if grid.ID == uuid.Nil {
		grid.ID = uuid.New()
	}
	if grid.CreatedAt.IsZero() {
		grid.CreatedAt = time.Now().UTC()
	}

	if err := grid.Validate(p.maxDimension); err != nil {
		return err
	}

	if err := p.gridRepo.Save(ctx, grid); err != nil {
		p.logger.Error(fmt.Sprintf("saving grid %s: %s", grid.ID, err))
		return err
	}

	p.logger.Info(fmt.Sprintf("saved grid %s (%dx%d)", grid.ID, grid.Rows, grid.Cols))
	return nil
}

// Grid returns a stored grid.
func (p *Pathfinding) Grid(ctx context.Context, gridID uuid.UUID) (*dmn.Grid, error) {
	return p.gridRepo.ByID(ctx, gridID)
}

// GenerateGrid carves a width x height maze and stores it as a grid. A zero
// seed picks one from the clock.
func (p *Pathfinding) GenerateGrid(ctx context.Context, ownerID uuid.UUID, name string, width, height int, seed int64) (*dmn.Grid, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m, err := maze.New(width, height, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	dims := m.Dimensions()
	grid := &dmn.Grid{
		OwnerID: ownerID,
		Name:    name,
		Rows:    dims.Rows,
		Cols:    dims.Cols,
		Tiles:   m.Tiles(),
	}
	if err := p.SaveGrid(ctx, grid); err != nil {
		return nil, err
	}
	return grid, nil
}
