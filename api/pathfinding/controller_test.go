package pathfindingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api"
	api_i "github.com/beka-birhanu/vinom-pathfinder/api/i"
	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memGridRepo struct {
	sync.Mutex
	grids map[uuid.UUID]*dmn.Grid
}

func (r *memGridRepo) Save(_ context.Context, g *dmn.Grid) error {
	r.Lock()
	defer r.Unlock()
	r.grids[g.ID] = g
	return nil
}

func (r *memGridRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Grid, error) {
	r.Lock()
	defer r.Unlock()
	if g, ok := r.grids[id]; ok {
		return g, nil
	}
	return nil, dmn.ErrGridNotFound
}

type memQueue struct {
	sync.Mutex
	queues map[string][]i.ScoredMember
}

func (q *memQueue) Enqueue(_ context.Context, key string, members ...i.ScoredMember) error {
	q.Lock()
	defer q.Unlock()
	queue := append(q.queues[key], members...)
	sort.SliceStable(queue, func(a, b int) bool { return queue[a].Score < queue[b].Score })
	q.queues[key] = queue
	return nil
}

func (q *memQueue) DequeTops(_ context.Context, key string, amount int64) ([]string, error) {
	q.Lock()
	defer q.Unlock()
	queue := q.queues[key]
	n := min(int(amount), len(queue))
	out := make([]string, 0, n)
	for _, m := range queue[:n] {
		out = append(out, m.Member)
	}
	q.queues[key] = queue[n:]
	return out, nil
}

func (q *memQueue) Count(_ context.Context, key string) int64 {
	q.Lock()
	defer q.Unlock()
	return int64(len(q.queues[key]))
}

type nopRecorder struct{}

func (nopRecorder) ObserveSearch(bool, pathfinding.Outcome, int, time.Duration) {}
func (nopRecorder) ObservePlaybackBatch(int)                                    {}

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

type stubTokenizer struct {
	userID uuid.UUID
}

func (s stubTokenizer) Generate(map[string]interface{}, time.Duration) (string, error) {
	return "", nil
}

func (s stubTokenizer) Decode(token string) (map[string]interface{}, error) {
	if token != "valid" {
		return nil, errors.New("invalid token")
	}
	return map[string]interface{}{"userID": s.userID.String()}, nil
}

type searchBody struct {
	Events    []pathfinding.Event `json:"events"`
	Outcome   string              `json:"outcome"`
	Finalized int                 `json:"finalized"`
}

func newTestEngine(t *testing.T, owner uuid.UUID) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pathfinder, err := service.NewPathfinding(&service.PathfinderConfig{
		GridRepo:      &memGridRepo{grids: map[uuid.UUID]*dmn.Grid{}},
		Recorder:      nopRecorder{},
		Logger:        nopLogger{},
		MaxDimension:  50,
		EngineOptions: []pathfinding.Option{pathfinding.WithStrictEndpoints()},
	})
	require.NoError(t, err)

	playback, err := service.NewPlayback(&memQueue{queues: map[string][]i.ScoredMember{}}, nopRecorder{}, nopLogger{}, &service.PlaybackOptions{BatchSize: 3})
	require.NoError(t, err)

	searchController, err := NewSearchController(pathfinder)
	require.NoError(t, err)
	playbackController, err := NewPlaybackController(pathfinder, playback)
	require.NoError(t, err)

	return api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{searchController, playbackController},
		AuthorizationMiddleware: identity.Authoriz(stubTokenizer{userID: owner}),
	}).Engine()
}

func do(t *testing.T, engine *gin.Engine, method, path string, body interface{}, authorized bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer valid")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func squareTiles(size int, start, end int) []pathfinding.Tile {
	tiles := make([]pathfinding.Tile, 0, size*size)
	for id := 0; id < size*size; id++ {
		tileType := pathfinding.Empty
		switch id {
		case start:
			tileType = pathfinding.Start
		case end:
			tileType = pathfinding.End
		}
		tiles = append(tiles, pathfinding.Tile{ID: id, Row: id / size, Col: id % size, Type: tileType})
	}
	return tiles
}

func ids(events []pathfinding.Event) []int {
	out := make([]int, 0, len(events))
	for _, e := range events {
		out = append(out, e.TileID)
	}
	return out
}

func TestSearchEndpoint(t *testing.T) {
	engine := newTestEngine(t, uuid.New())

	t.Run("runs an ad-hoc search", func(t *testing.T) {
		rec := do(t, engine, http.MethodPost, "/api/v1/search", SearchRequest{
			Rows: 3, Cols: 3, Tiles: squareTiles(3, 0, 4), CurrentTileID: 0,
		}, false)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var body searchBody
		decode(t, rec, &body)
		assert.Equal(t, "reached", body.Outcome)
		assert.Equal(t, []int{0, 1, 2, 3, 6}, ids(body.Events))
		assert.Equal(t, pathfinding.NewCost(110), body.Events[4].Distance)
	})

	t.Run("rejects malformed bodies", func(t *testing.T) {
		rec := do(t, engine, http.MethodPost, "/api/v1/search", map[string]int{"rows": 0}, false)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a grid without an end", func(t *testing.T) {
		rec := do(t, engine, http.MethodPost, "/api/v1/search", SearchRequest{
			Rows: 3, Cols: 3, Tiles: squareTiles(3, 0, -1),
		}, false)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), pathfinding.ErrNoEndTile.Error())
	})
}

func TestGridEndpoints(t *testing.T) {
	owner := uuid.New()
	engine := newTestEngine(t, owner)

	t.Run("requires authorization", func(t *testing.T) {
		rec := do(t, engine, http.MethodPost, "/api/v1/grids", CreateGridRequest{}, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	rec := do(t, engine, http.MethodPost, "/api/v1/grids", CreateGridRequest{
		Name: "square", Rows: 3, Cols: 3, Tiles: squareTiles(3, 0, 4),
	}, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created GridResponse
	decode(t, rec, &created)
	assert.Equal(t, owner, created.OwnerID)

	t.Run("fetches a stored grid", func(t *testing.T) {
		rec := do(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/grids/%s", created.ID), nil, true)
		require.Equal(t, http.StatusOK, rec.Code)

		var fetched GridResponse
		decode(t, rec, &fetched)
		assert.Equal(t, "square", fetched.Name)
		assert.Len(t, fetched.Tiles, 9)
	})

	t.Run("unknown and malformed ids", func(t *testing.T) {
		rec := do(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/grids/%s", uuid.New()), nil, true)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = do(t, engine, http.MethodGet, "/api/v1/grids/not-a-uuid", nil, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("searches a stored grid without a body", func(t *testing.T) {
		rec := do(t, engine, http.MethodPost, fmt.Sprintf("/api/v1/grids/%s/search", created.ID), nil, true)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var body searchBody
		decode(t, rec, &body)
		assert.Equal(t, []int{0, 1, 2, 3, 6}, ids(body.Events))
	})

	t.Run("searches from an unknown tile", func(t *testing.T) {
		current := 99
		rec := do(t, engine, http.MethodPost, fmt.Sprintf("/api/v1/grids/%s/search", created.ID), GridSearchRequest{CurrentTileID: &current}, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects an invalid layout", func(t *testing.T) {
		rec := do(t, engine, http.MethodPost, "/api/v1/grids", CreateGridRequest{
			Name: "broken", Rows: 3, Cols: 3, Tiles: squareTiles(3, 0, 4)[:8],
		}, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("generates a maze", func(t *testing.T) {
		rec := do(t, engine, http.MethodPost, "/api/v1/grids/generate", GenerateGridRequest{
			Name: "maze", Width: 3, Height: 2, Seed: 11,
		}, true)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var generated GridResponse
		decode(t, rec, &generated)
		assert.Equal(t, 5, generated.Rows)
		assert.Equal(t, 7, generated.Cols)
	})
}

func TestPlaybackEndpoints(t *testing.T) {
	engine := newTestEngine(t, uuid.New())

	rec := do(t, engine, http.MethodPost, "/api/v1/grids", CreateGridRequest{
		Name: "square", Rows: 3, Cols: 3, Tiles: squareTiles(3, 0, 4),
	}, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	var grid GridResponse
	decode(t, rec, &grid)

	rec = do(t, engine, http.MethodPost, fmt.Sprintf("/api/v1/grids/%s/playback", grid.ID), GridSearchRequest{}, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var started PlaybackResponse
	decode(t, rec, &started)
	assert.Equal(t, 5, started.Total)
	assert.Equal(t, 3, started.BatchSize)
	assert.Equal(t, int64(20), started.TickMS)

	next := fmt.Sprintf("/api/v1/playbacks/%s/next", started.ID)

	var batch PlaybackBatchResponse
	rec = do(t, engine, http.MethodGet, next, nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &batch)
	assert.Equal(t, []int{0, 1, 2}, ids(batch.Events))
	assert.Equal(t, int64(2), batch.Remaining)

	rec = do(t, engine, http.MethodGet, next, nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &batch)
	assert.Equal(t, []int{3, 6}, ids(batch.Events))
	assert.Equal(t, int64(0), batch.Remaining)

	rec = do(t, engine, http.MethodGet, next, nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
