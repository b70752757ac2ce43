// Package playback paces a visitation sequence for animation.
//
// A search returns its whole event sequence at once; a renderer usually wants
// it a few tiles at a time. Replay hands out fixed-size batches on a
// repeating tick until the sequence is drained.
package playback

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
)

const (
	DefaultBatchSize = 25
	DefaultTick      = 20 * time.Millisecond
)

// Options controls the replay cadence.
type Options struct {
	BatchSize int           // events handed out per tick
	Tick      time.Duration // delay between batches
}

func (o Options) withDefaults() Options {
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
	if o.Tick <= 0 {
		o.Tick = DefaultTick
	}
	return o
}

// Batches splits events into consecutive batches of at most size events.
func Batches(events []pathfinding.Event, size int) [][]pathfinding.Event {
	if size <= 0 {
		size = DefaultBatchSize
	}

	batches := make([][]pathfinding.Event, 0, (len(events)+size-1)/size)
	for start := 0; start < len(events); start += size {
		end := min(start+size, len(events))
		batches = append(batches, events[start:end])
	}
	return batches
}

// Replay calls render with one batch per tick, the first one after the first
// tick. It returns nil once every batch was rendered, or the context error.
func Replay(ctx context.Context, events []pathfinding.Event, opts Options, render func([]pathfinding.Event)) error {
	opts = opts.withDefaults()
	batches := Batches(events, opts.BatchSize)
	if len(batches) == 0 {
		return nil
	}

	ticker := time.NewTicker(opts.Tick)
	defer ticker.Stop()

	for _, batch := range batches {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			render(batch)
		}
	}
	return nil
}
