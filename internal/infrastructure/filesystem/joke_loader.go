package filesystem

import (
	"encoding/json"
	"fmt"
	"os"

	"telegram-joke-bot/internal/domain/joke"
)

// JokeLoader handles loading seed jokes from files
type JokeLoader struct{}

// NewJokeLoader creates a new joke loader
func NewJokeLoader() *JokeLoader {
	return &JokeLoader{}
}

// JokeData represents the JSON structure of a seed joke file
type JokeData struct {
	Jokes []string `json:"jokes"`
}

// LoadFromFile loads seed jokes from a JSON file
func (jl *JokeLoader) LoadFromFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open jokes file: %w", err)
	}
	defer file.Close()

	var data JokeData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode jokes JSON: %w", err)
	}

	for i, text := range data.Jokes {
		if err := joke.ValidateText(text); err != nil {
			return nil, fmt.Errorf("invalid joke #%d: %w", i+1, err)
		}
	}

	return data.Jokes, nil
}
