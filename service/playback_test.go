package service

import (
	"context"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []pathfinding.Event {
	events := make([]pathfinding.Event, 0, n)
	for k := 0; k < n; k++ {
		events = append(events, pathfinding.Event{TileID: k, Type: pathfinding.Visited, Distance: pathfinding.NewCost(uint64(k * 10))})
	}
	return events
}

func TestPlaybackDrainsInBatches(t *testing.T) {
	ctx := context.Background()
	queue := newFakeQueue()
	recorder := &fakeRecorder{}
	svc, err := NewPlayback(queue, recorder, &fakeLogger{}, nil)
	require.NoError(t, err)

	events := sequence(30)
	info, err := svc.Start(ctx, events)
	require.NoError(t, err)
	assert.Equal(t, 30, info.Total)
	assert.Equal(t, 25, info.BatchSize)
	assert.Equal(t, 20*time.Millisecond, info.Tick)

	first, err := svc.Next(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, events[:25], first.Events)
	assert.Equal(t, int64(5), first.Remaining)

	second, err := svc.Next(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, events[25:], second.Events)
	assert.Equal(t, int64(0), second.Remaining)

	_, err = svc.Next(ctx, info.ID)
	assert.ErrorIs(t, err, ErrPlaybackNotFound)
	assert.Equal(t, []int{25, 5}, recorder.batches)
}

func TestPlaybackOptions(t *testing.T) {
	ctx := context.Background()
	queue := newFakeQueue()
	svc, err := NewPlayback(queue, &fakeRecorder{}, &fakeLogger{}, &PlaybackOptions{Prefix: "test", BatchSize: 2, Tick: time.Second})
	require.NoError(t, err)

	info, err := svc.Start(ctx, sequence(3))
	require.NoError(t, err)
	assert.Equal(t, time.Second, info.Tick)
	assert.Equal(t, int64(3), queue.Count(ctx, "test:playback:"+info.ID.String()))

	batch, err := svc.Next(ctx, info.ID)
	require.NoError(t, err)
	assert.Len(t, batch.Events, 2)
}

func TestPlaybackEmptyAndUnknown(t *testing.T) {
	ctx := context.Background()
	svc, err := NewPlayback(newFakeQueue(), &fakeRecorder{}, &fakeLogger{}, nil)
	require.NoError(t, err)

	info, err := svc.Start(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, info.Total)

	_, err = svc.Next(ctx, info.ID)
	assert.ErrorIs(t, err, ErrPlaybackNotFound)

	_, err = svc.Next(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrPlaybackNotFound)
}

func TestPlaybackSkipsMalformedMembers(t *testing.T) {
	ctx := context.Background()
	queue := newFakeQueue()
	logger := &fakeLogger{}
	svc, err := NewPlayback(queue, &fakeRecorder{}, logger, nil)
	require.NoError(t, err)

	id := uuid.New()
	require.NoError(t, queue.Enqueue(ctx, svc.queueKey(id),
		i.ScoredMember{Score: 0, Member: "garbage"},
		i.ScoredMember{Score: 1, Member: encodeMember(1, pathfinding.Event{TileID: 7, Type: pathfinding.Checked, Distance: pathfinding.NewCost(3)})},
	))

	batch, err := svc.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []pathfinding.Event{{TileID: 7, Type: pathfinding.Checked, Distance: pathfinding.NewCost(3)}}, batch.Events)
	assert.Len(t, logger.warnings, 1)
}

func TestMemberCodec(t *testing.T) {
	event := pathfinding.Event{TileID: 12, Type: pathfinding.Visited, Distance: pathfinding.Infinity}
	member := encodeMember(4, event)
	assert.Equal(t, "4|12|0|340282366920938463463374607431768211455", member)

	decoded, err := decodeMember(member)
	require.NoError(t, err)
	assert.Equal(t, event, decoded)

	for _, bad := range []string{"", "1|2|3", "1|x|0|0", "1|2|9|0", "1|2|0|-1"} {
		_, err := decodeMember(bad)
		assert.ErrorIs(t, err, ErrInvalidMember, bad)
	}
}
