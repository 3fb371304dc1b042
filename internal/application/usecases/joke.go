package usecases

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"telegram-joke-bot/internal/domain/host"
	"telegram-joke-bot/internal/domain/joke"
)

// JokeUseCase handles joke-related business operations. Every read and append
// of the store is serialized so a picked position is always within bounds.
type JokeUseCase struct {
	mu     sync.Mutex
	repo   joke.Repository
	clock  host.Clock
	logger *zap.Logger
}

// NewJokeUseCase creates a new joke use case
func NewJokeUseCase(repo joke.Repository, clock host.Clock, logger *zap.Logger) *JokeUseCase {
	return &JokeUseCase{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Random picks a joke keyed off the clock and returns it along with the store size
func (uc *JokeUseCase) Random(ctx context.Context) (*joke.Joke, int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	count, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count jokes: %w", err)
	}

	idx := joke.SelectIndex(uc.clock.Now(), count)
	j, err := uc.repo.At(ctx, idx+1)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get joke: %w", err)
	}

	return j, count, nil
}

// Tell appends a new joke to the store
func (uc *JokeUseCase) Tell(ctx context.Context, text string) (*joke.Joke, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	j, err := uc.repo.Append(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to add joke: %w", err)
	}

	uc.logger.Info("Learned a new joke", zap.Int("position", j.Position()))
	return j, nil
}

// Count returns the number of known jokes
func (uc *JokeUseCase) Count(ctx context.Context) (int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	count, err := uc.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count jokes: %w", err)
	}
	return count, nil
}

// List returns every known joke in order
func (uc *JokeUseCase) List(ctx context.Context) ([]*joke.Joke, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	jokes, err := uc.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jokes: %w", err)
	}
	return jokes, nil
}

// Seed appends the given jokes when the store holds nothing but the default joke
func (uc *JokeUseCase) Seed(ctx context.Context, texts []string) (int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	count, err := uc.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count jokes: %w", err)
	}
	if count > 1 {
		uc.logger.Debug("Store already populated, skipping seed", zap.Int("count", count))
		return 0, nil
	}

	for i, text := range texts {
		if _, err := uc.repo.Append(ctx, text); err != nil {
			return i, fmt.Errorf("failed to seed joke #%d: %w", i+1, err)
		}
	}

	uc.logger.Info("Seeded jokes", zap.Int("count", len(texts)))
	return len(texts), nil
}
