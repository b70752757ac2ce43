package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

type fakeUserRepo struct {
	users map[string]*dmn.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*dmn.User{}}
}

func (r *fakeUserRepo) Save(user *dmn.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *fakeUserRepo) ByUsername(username string) (*dmn.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

type fakeTokenizer struct {
	claims map[string]interface{}
}

func (t *fakeTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	t.claims = claims
	return "token-" + claims["username"].(string), nil
}

func (t *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return t.claims, nil
}

type fakeGridRepo struct {
	grids   map[uuid.UUID]*dmn.Grid
	saveErr error
}

func newFakeGridRepo() *fakeGridRepo {
	return &fakeGridRepo{grids: map[uuid.UUID]*dmn.Grid{}}
}

func (r *fakeGridRepo) Save(_ context.Context, grid *dmn.Grid) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.grids[grid.ID] = grid
	return nil
}

func (r *fakeGridRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Grid, error) {
	if g, ok := r.grids[id]; ok {
		return g, nil
	}
	return nil, dmn.ErrGridNotFound
}

type observedSearch struct {
	aggressive bool
	outcome    pathfinding.Outcome
	finalized  int
}

type fakeRecorder struct {
	searches []observedSearch
	batches  []int
}

func (r *fakeRecorder) ObserveSearch(aggressive bool, outcome pathfinding.Outcome, finalized int, _ time.Duration) {
	r.searches = append(r.searches, observedSearch{aggressive: aggressive, outcome: outcome, finalized: finalized})
}

func (r *fakeRecorder) ObservePlaybackBatch(size int) {
	r.batches = append(r.batches, size)
}

type fakeLogger struct {
	infos, warnings, errors []string
}

func (l *fakeLogger) Info(m string)    { l.infos = append(l.infos, m) }
func (l *fakeLogger) Warning(m string) { l.warnings = append(l.warnings, m) }
func (l *fakeLogger) Error(m string)   { l.errors = append(l.errors, m) }

// fakeQueue is an in-memory sorted queue.
type fakeQueue struct {
	sync.Mutex
	queues map[string][]i.ScoredMember
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{queues: map[string][]i.ScoredMember{}}
}

func (q *fakeQueue) Enqueue(_ context.Context, key string, members ...i.ScoredMember) error {
	q.Lock()
	defer q.Unlock()
	queue := append(q.queues[key], members...)
	sort.SliceStable(queue, func(a, b int) bool { return queue[a].Score < queue[b].Score })
	q.queues[key] = queue
	return nil
}

func (q *fakeQueue) DequeTops(_ context.Context, key string, amount int64) ([]string, error) {
	q.Lock()
	defer q.Unlock()
	queue := q.queues[key]
	n := int(amount)
	if n > len(queue) {
		n = len(queue)
	}
	members := make([]string, 0, n)
	for _, m := range queue[:n] {
		members = append(members, m.Member)
	}
	q.queues[key] = queue[n:]
	return members, nil
}

func (q *fakeQueue) Count(_ context.Context, key string) int64 {
	q.Lock()
	defer q.Unlock()
	return int64(len(q.queues[key]))
}

// squareTiles builds a size x size grid with ids row*size+col.
func squareTiles(size int, start, end pathfinding.Position, walls ...pathfinding.Position) []pathfinding.Tile {
	wallSet := map[pathfinding.Position]bool{}
	for _, w := range walls {
		wallSet[w] = true
	}
	tiles := make([]pathfinding.Tile, 0, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			pos := pathfinding.Position{Row: row, Col: col}
			t := pathfinding.Empty
			switch {
			case wallSet[pos]:
				t = pathfinding.Wall
			case pos == start:
				t = pathfinding.Start
			case pos == end:
				t = pathfinding.End
			}
			tiles = append(tiles, pathfinding.Tile{ID: row*size + col, Row: row, Col: col, Type: t})
		}
	}
	return tiles
}

func eventTileIDs(events []pathfinding.Event) []int {
	ids := make([]int, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.TileID)
	}
	return ids
}
