package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/beka-birhanu/vinom-pathfinder/playback"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const (
	defaultPlaybackPrefix = "pathfinder"
	playbackKeyFmt        = "%s:playback:%s"
	memberSeparator       = "|"
)

var (
	ErrPlaybackNotFound = errors.New("playback drained or expired")
	ErrInvalidMember    = errors.New("invalid playback member")
)

// PlaybackOptions configures a Playback service.
type PlaybackOptions struct {
	Prefix    string
	BatchSize int
	Tick      time.Duration
}

// Playback buffers event sequences in a sorted queue so a client can drain
// them batch by batch.
type Playback struct {
	queue    i.SortedQueue
	recorder i.SearchRecorder
	logger   i.Logger
	opts     PlaybackOptions
}

var _ i.Playback = &Playback{}

// NewPlayback creates a Playback service. Zero options fall back to the
// default batch size and tick.
func NewPlayback(queue i.SortedQueue, recorder i.SearchRecorder, logger i.Logger, opts *PlaybackOptions) (*Playback, error) {
	if opts == nil {
		opts = &PlaybackOptions{}
	}

	if opts.Prefix == "" {
		opts.Prefix = defaultPlaybackPrefix
	}

	if opts.BatchSize <= 0 {
		opts.BatchSize = playback.DefaultBatchSize
	}

	if opts.Tick <= 0 {
		opts.Tick = playback.DefaultTick
	}

	return &Playback{
		queue:    queue,
		recorder: recorder,
		logger:   logger,
		opts:     *opts,
	}, nil
}

// Start queues events under a new playback id.
func (p *Playback) Start(ctx context.Context, events []pathfinding.Event) (i.PlaybackInfo, error) {
	id := uuid.New()
	info := i.PlaybackInfo{
		ID:        id,
		Total:     len(events),
		BatchSize: p.opts.BatchSize,
		Tick:      p.opts.Tick,
	}
	if len(events) == 0 {
		return info, nil
	}

	members := make([]i.ScoredMember, 0, len(events))
	for seq, event := range events {
		members = append(members, i.ScoredMember{Score: float64(seq), Member: encodeMember(seq, event)})
	}

	if err := p.queue.Enqueue(ctx, p.queueKey(id), members...); err != nil {
		p.logger.Error(fmt.Sprintf("queueing playback %s: %s", id, err))
		return i.PlaybackInfo{}, err
	}

	p.logger.Info(fmt.Sprintf("queued playback %s with %d events", id, len(events)))
	return info, nil
}

// Next pops the next batch of a playback.
func (p *Playback) Next(ctx context.Context, id uuid.UUID) (i.PlaybackBatch, error) {
	key := p.queueKey(id)
	raw, err := p.queue.DequeTops(ctx, key, int64(p.opts.BatchSize))
	if err != nil {
		p.logger.Error(fmt.Sprintf("draining playback %s: %s", id, err))
		return i.PlaybackBatch{}, err
	}
	if len(raw) == 0 {
		return i.PlaybackBatch{}, ErrPlaybackNotFound
	}

	events := make([]pathfinding.Event, 0, len(raw))
	for _, member := range raw {
		event, err := decodeMember(member)
		if err != nil {
			p.logger.Warning(fmt.Sprintf("skipping member of playback %s: %s", id, err))
			continue
		}
		events = append(events, event)
	}

	p.recorder.ObservePlaybackBatch(len(events))
	return i.PlaybackBatch{
		Events:    events,
		Remaining: p.queue.Count(ctx, key),
	}, nil
}

func (p *Playback) queueKey(id uuid.UUID) string {
	return fmt.Sprintf(playbackKeyFmt, p.opts.Prefix, id)
}

// encodeMember writes seq|tileID|type|distance. The sequence number keeps
// members unique when a tile appears more than once.
func encodeMember(seq int, e pathfinding.Event) string {
	return strings.Join([]string{
		strconv.Itoa(seq),
		strconv.Itoa(e.TileID),
		strconv.Itoa(int(e.Type)),
		e.Distance.String(),
	}, memberSeparator)
}

func decodeMember(member string) (pathfinding.Event, error) {
	parts := strings.Split(member, memberSeparator)
	if len(parts) != 4 {
		return pathfinding.Event{}, fmt.Errorf("%w: %q", ErrInvalidMember, member)
	}

	tileID, err := strconv.Atoi(parts[1])
	if err != nil {
		return pathfinding.Event{}, fmt.Errorf("%w: tile id: %s", ErrInvalidMember, err)
	}
	eventType, err := strconv.Atoi(parts[2])
	if err != nil || (pathfinding.EventType(eventType) != pathfinding.Visited && pathfinding.EventType(eventType) != pathfinding.Checked) {
		return pathfinding.Event{}, fmt.Errorf("%w: event type %q", ErrInvalidMember, parts[2])
	}
	distance, err := pathfinding.ParseCost(parts[3])
	if err != nil {
		return pathfinding.Event{}, fmt.Errorf("%w: distance: %s", ErrInvalidMember, err)
	}

	return pathfinding.Event{TileID: tileID, Type: pathfinding.EventType(eventType), Distance: distance}, nil
}
