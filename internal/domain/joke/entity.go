package joke

import (
	"errors"
	"strings"
	"time"
)

// DefaultText is the joke every store starts with
const DefaultText = "What does Mr. Williams reign over? His dom-minions!"

var (
	// ErrEmptyText is returned when a joke without any visible text is added
	ErrEmptyText = errors.New("joke text is empty")
	// ErrNotFound is returned when a position is outside the store
	ErrNotFound = errors.New("joke not found")
)

// Joke represents a single stored joke
type Joke struct {
	position  int
	text      string
	createdAt time.Time
}

// NewJoke creates a new joke at the given 1-based position
func NewJoke(position int, text string) *Joke {
	return &Joke{
		position:  position,
		text:      text,
		createdAt: time.Now(),
	}
}

// Getters
func (j *Joke) Position() int        { return j.position }
func (j *Joke) Text() string         { return j.text }
func (j *Joke) CreatedAt() time.Time { return j.createdAt }

// SetCreatedAt sets the creation time (used by repository)
func (j *Joke) SetCreatedAt(t time.Time) {
	j.createdAt = t
}

// ValidateText checks that a joke carries some text
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	return nil
}

// SelectIndex maps a clock reading onto a 0-based index of a store holding
// count jokes. count must be at least 1.
func SelectIndex(now uint64, count int) int {
	return int(now % uint64(count))
}
