package pathfindingapi

import (
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/gin-gonic/gin"
)

var badRequestErrors = []error{
	pathfinding.ErrInvalidDimensions,
	pathfinding.ErrNoEndTile,
	pathfinding.ErrUnknownStartTile,
	pathfinding.ErrTileOutOfRange,
	pathfinding.ErrCostOverflow,
	service.ErrGridTooLarge,
	maze.ErrInvalidDimensions,
	dmn.ErrGridDimensions,
	dmn.ErrDuplicateTileID,
	dmn.ErrDuplicatePosition,
	dmn.ErrTileOutsideGrid,
	dmn.ErrStartTileCount,
	dmn.ErrEndTileCount,
	dmn.ErrIncompleteGrid,
	dmn.ErrStartTileNotInGrid,
}

var notFoundErrors = []error{
	dmn.ErrGridNotFound,
	service.ErrPlaybackNotFound,
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}

func abortWithError(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		ctx.JSON(status, gin.H{"error": "internal error"})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
