package game

import "context"

// ScoreStore persists the single best score across sessions.
// Implementations live in the store package (memory, SQLite, Redis).
type ScoreStore interface {
	// Read returns the best score and whether one has been recorded.
	Read(ctx context.Context) (int, bool, error)

	// Write replaces the best score.
	Write(ctx context.Context, attempts int) error
}
