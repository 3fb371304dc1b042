package joke

import "context"

// Repository defines the contract for joke persistence.
// Implementations must hold at least one joke at all times and only ever append.
type Repository interface {
	// Append stores a new joke at the end of the sequence
	Append(ctx context.Context, text string) (*Joke, error)

	// Count returns the number of stored jokes
	Count(ctx context.Context) (int, error)

	// At retrieves the joke at the given 1-based position
	At(ctx context.Context, position int) (*Joke, error)

	// All retrieves every joke in insertion order
	All(ctx context.Context) ([]*Joke, error)
}
