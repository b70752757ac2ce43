package i

import "context"

// ScoredMember is a member of a sorted queue with its score.
type ScoredMember struct {
	Score  float64
	Member string
}

// SortedQueue is a score-ordered queue with expiring keys.
type SortedQueue interface {
	// Enqueue adds members to the queue at queueKey.
	Enqueue(ctx context.Context, queueKey string, members ...ScoredMember) error

	// DequeTops removes and returns up to amount members with the lowest scores.
	DequeTops(ctx context.Context, queueKey string, amount int64) ([]string, error)

	// Count returns the number of members left at queueKey.
	Count(ctx context.Context, queueKey string) int64
}
