package pathfindingapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
)

// PlaybackController queues search results for batched delivery.
type PlaybackController struct {
	pathfinder i.Pathfinder
	playback   i.Playback
}

// NewPlaybackController initializes a PlaybackController.
func NewPlaybackController(p i.Pathfinder, pb i.Playback) (*PlaybackController, error) {
	return &PlaybackController{
		pathfinder: p,
		playback:   pb,
	}, nil
}

// RegisterPublic registers public routes.
func (pc *PlaybackController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (pc *PlaybackController) RegisterProtected(route *gin.RouterGroup) {
	route.POST("/grids/:ID/playback", pc.start)
	route.GET("/playbacks/:ID/next", pc.next)
}

func (pc *PlaybackController) start(ctx *gin.Context) {
	gridID, ok := pathID(ctx)
	if !ok {
		return
	}

	var request GridSearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := pc.pathfinder.SearchGrid(ctx.Request.Context(), gridID, request.CurrentTileID, request.Aggressive)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	info, err := pc.playback.Start(ctx.Request.Context(), result.Events)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, &PlaybackResponse{
		ID:        info.ID,
		Outcome:   result.Outcome,
		Total:     info.Total,
		BatchSize: info.BatchSize,
		TickMS:    info.Tick.Milliseconds(),
	})
}

func (pc *PlaybackController) next(ctx *gin.Context) {
	playbackID, ok := pathID(ctx)
	if !ok {
		return
	}

	batch, err := pc.playback.Next(ctx.Request.Context(), playbackID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &PlaybackBatchResponse{
		Events:    batch.Events,
		Remaining: batch.Remaining,
	})
}
