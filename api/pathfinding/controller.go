package pathfindingapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SearchController serves ad-hoc searches and stored grids.
type SearchController struct {
	pathfinder i.Pathfinder
}

// NewSearchController initializes a SearchController.
func NewSearchController(p i.Pathfinder) (*SearchController, error) {
	return &SearchController{pathfinder: p}, nil
}

// RegisterPublic registers public routes.
func (sc *SearchController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/search", sc.search)
}

// RegisterProtected registers protected routes.
func (sc *SearchController) RegisterProtected(route *gin.RouterGroup) {
	grids := route.Group("/grids")
	{
		grids.POST("", sc.createGrid)
		grids.POST("/generate", sc.generateGrid)
		grids.GET("/:ID", sc.grid)
		grids.POST("/:ID/search", sc.searchGrid)
	}
}

func (sc *SearchController) search(ctx *gin.Context) {
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := sc.pathfinder.Search(ctx.Request.Context(), i.SearchRequest{
		Dimensions:    pathfinding.Dimensions{Rows: request.Rows, Cols: request.Cols},
		Tiles:         request.Tiles,
		CurrentTileID: request.CurrentTileID,
		Aggressive:    request.Aggressive,
	})
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (sc *SearchController) createGrid(ctx *gin.Context) {
	ownerID, err := identity.UserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request CreateGridRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grid := &dmn.Grid{
		OwnerID: ownerID,
		Name:    request.Name,
		Rows:    request.Rows,
		Cols:    request.Cols,
		Tiles:   request.Tiles,
	}
	if err := sc.pathfinder.SaveGrid(ctx.Request.Context(), grid); err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newGridResponse(grid))
}

func (sc *SearchController) generateGrid(ctx *gin.Context) {
	ownerID, err := identity.UserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request GenerateGridRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grid, err := sc.pathfinder.GenerateGrid(ctx.Request.Context(), ownerID, request.Name, request.Width, request.Height, request.Seed)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newGridResponse(grid))
}

func (sc *SearchController) grid(ctx *gin.Context) {
	gridID, ok := pathID(ctx)
	if !ok {
		return
	}

	grid, err := sc.pathfinder.Grid(ctx.Request.Context(), gridID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newGridResponse(grid))
}

func (sc *SearchController) searchGrid(ctx *gin.Context) {
	gridID, ok := pathID(ctx)
	if !ok {
		return
	}

	var request GridSearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := sc.pathfinder.SearchGrid(ctx.Request.Context(), gridID, request.CurrentTileID, request.Aggressive)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// pathID parses the :ID route parameter, answering 400 when malformed.
func pathID(ctx *gin.Context) (uuid.UUID, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return ID, true
}
