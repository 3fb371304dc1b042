package memory

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"telegram-joke-bot/internal/domain/joke"
)

type jokeRepository struct {
	logger *zap.Logger
	mu     sync.RWMutex
	jokes  []*joke.Joke
}

// NewJokeRepository creates an in-memory joke repository seeded with the default joke
func NewJokeRepository(logger *zap.Logger) joke.Repository {
	return &jokeRepository{
		logger: logger,
		jokes:  []*joke.Joke{joke.NewJoke(1, joke.DefaultText)},
	}
}

// Append stores a new joke at the end of the list
func (r *jokeRepository) Append(ctx context.Context, text string) (*joke.Joke, error) {
	if err := joke.ValidateText(text); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	j := joke.NewJoke(len(r.jokes)+1, text)
	r.jokes = append(r.jokes, j)
	r.logger.Debug("Appended joke to memory", zap.Int("position", j.Position()))

	return j, nil
}

// Count returns the number of stored jokes
func (r *jokeRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jokes), nil
}

// At retrieves the joke at the given 1-based position
func (r *jokeRepository) At(ctx context.Context, position int) (*joke.Joke, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if position < 1 || position > len(r.jokes) {
		return nil, fmt.Errorf("position %d of %d: %w", position, len(r.jokes), joke.ErrNotFound)
	}

	return r.jokes[position-1], nil
}

// All retrieves every joke in insertion order
func (r *jokeRepository) All(ctx context.Context) ([]*joke.Joke, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jokes := make([]*joke.Joke, len(r.jokes))
	copy(jokes, r.jokes)
	return jokes, nil
}
