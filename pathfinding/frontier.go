package pathfinding

import "container/heap"

// frontierEntry is a value copy of a node taken when it was pushed.
// Several entries for one position may be queued at once; the stale ones
// are discarded at pop time against the authoritative node.
type frontierEntry struct {
	distance Cost
	position Position
	tileID   int
	visited  bool
	isWall   bool
	seq      uint64
}

type frontierQueue []frontierEntry

func (q frontierQueue) Len() int { return len(q) }

// Less orders by distance, then tile ID, then insertion order.
func (q frontierQueue) Less(i, j int) bool {
	if q[i].distance != q[j].distance {
		return q[i].distance.Less(q[j].distance)
	}
	if q[i].tileID != q[j].tileID {
		return q[i].tileID < q[j].tileID
	}
	return q[i].seq < q[j].seq
}

func (q frontierQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontierQueue) Push(x any) {
	*q = append(*q, x.(frontierEntry))
}

func (q *frontierQueue) Pop() any {
	old := *q
	n := len(old)
	entry := old[n-1]
	*q = old[:n-1]
	return entry
}

// frontier is a min-priority queue with lazy deletion.
type frontier struct {
	queue frontierQueue
	seq   uint64
}

func newFrontier(capacity int) *frontier {
	f := &frontier{queue: make(frontierQueue, 0, capacity)}
	heap.Init(&f.queue)
	return f
}

// push queues a snapshot of n at distance.
func (f *frontier) push(n *node, distance Cost) {
	heap.Push(&f.queue, frontierEntry{
		distance: distance,
		position: n.position(),
		tileID:   n.tileID,
		visited:  n.visited,
		isWall:   n.isWall,
		seq:      f.seq,
	})
	f.seq++
}

func (f *frontier) pop() (frontierEntry, bool) {
	if f.queue.Len() == 0 {
		return frontierEntry{}, false
	}
	return heap.Pop(&f.queue).(frontierEntry), true
}

func (f *frontier) len() int { return f.queue.Len() }
