package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-joke-bot/internal/domain/joke"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jokes.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestJokeLoader_LoadFromFile(t *testing.T) {
	path := writeFile(t, `{"jokes": ["knock knock", "I told my wife she was drawing her eyebrows too high. She looked surprised."]}`)

	jokes, err := NewJokeLoader().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"knock knock",
		"I told my wife she was drawing her eyebrows too high. She looked surprised.",
	}, jokes)
}

func TestJokeLoader_Errors(t *testing.T) {
	loader := NewJokeLoader()

	_, err := loader.LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = loader.LoadFromFile(writeFile(t, `not json`))
	assert.Error(t, err)

	_, err = loader.LoadFromFile(writeFile(t, `{"jokes": ["fine", "  "]}`))
	assert.ErrorIs(t, err, joke.ErrEmptyText)
}
