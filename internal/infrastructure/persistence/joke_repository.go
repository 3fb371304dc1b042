package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"telegram-joke-bot/internal/domain/joke"
)

type jokeRepository struct {
	db *sql.DB
}

// NewJokeRepository creates a new SQLite-backed joke repository.
// The database must come from NewSQLiteDB so the table is seeded.
func NewJokeRepository(db *sql.DB) joke.Repository {
	return &jokeRepository{db: db}
}

// Append stores a new joke at the end of the sequence
func (r *jokeRepository) Append(ctx context.Context, text string) (*joke.Joke, error) {
	if err := joke.ValidateText(text); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	createdAt := time.Now().UTC()
	if _, err := tx.ExecContext(ctx, "INSERT INTO jokes (text, created_at) VALUES (?, ?)", text, createdAt); err != nil {
		return nil, fmt.Errorf("failed to save joke: %w", err)
	}

	var position int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM jokes").Scan(&position); err != nil {
		return nil, fmt.Errorf("failed to count jokes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit joke: %w", err)
	}

	j := joke.NewJoke(position, text)
	j.SetCreatedAt(createdAt)
	return j, nil
}

// Count returns the number of stored jokes
func (r *jokeRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM jokes").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count jokes: %w", err)
	}
	return count, nil
}

// At retrieves the joke at the given 1-based position
func (r *jokeRepository) At(ctx context.Context, position int) (*joke.Joke, error) {
	if position < 1 {
		return nil, fmt.Errorf("position %d: %w", position, joke.ErrNotFound)
	}

	query := `
		SELECT text, created_at
		FROM jokes
		ORDER BY id
		LIMIT 1 OFFSET ?
	`

	var text string
	var createdAt time.Time

	err := r.db.QueryRowContext(ctx, query, position-1).Scan(&text, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("position %d: %w", position, joke.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find joke at position %d: %w", position, err)
	}

	j := joke.NewJoke(position, text)
	j.SetCreatedAt(createdAt)
	return j, nil
}

// All retrieves every joke in insertion order
func (r *jokeRepository) All(ctx context.Context) ([]*joke.Joke, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT text, created_at FROM jokes ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query jokes: %w", err)
	}
	defer rows.Close()

	var jokes []*joke.Joke
	for rows.Next() {
		var text string
		var createdAt time.Time
		if err := rows.Scan(&text, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan joke: %w", err)
		}

		j := joke.NewJoke(len(jokes)+1, text)
		j.SetCreatedAt(createdAt)
		jokes = append(jokes, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating jokes: %w", err)
	}

	return jokes, nil
}
