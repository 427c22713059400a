package i

import "context"

// SortedQueue is a queue ordered by score, lowest first.
type SortedQueue interface {
	// Enqueue adds a member to the queue stored under queueKey.
	Enqueue(ctx context.Context, queueKey string, score float64, member []byte) error

	// DequeTops removes and returns up to amount members with the lowest scores.
	DequeTops(ctx context.Context, queueKey string, amount int64) ([][]byte, error)

	// Count returns the number of members waiting under queueKey.
	Count(ctx context.Context, queueKey string) int64
}
