package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestJokesCommands(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	config := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(config, []byte(`
storage:
  driver: sqlite
  path: `+filepath.Join(dir, "jokes.db")+`
log:
  level: error
`), 0644))

	out := runCLI(t, "jokes", "add", "--config", config, "Why", "did", "the", "chicken", "cross", "the", "road?")
	assert.Equal(t, "Stored joke #2\n", out)

	out = runCLI(t, "jokes", "list", "--config", config)
	assert.Equal(t,
		"1. What does Mr. Williams reign over? His dom-minions!\n2. Why did the chicken cross the road?\n",
		out)
}

func TestCreditsCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out := runCLI(t, "credits", "--config", filepath.Join(dir, "none.yaml"), "250")
	assert.Equal(t, "Accepted 250 credits, balance is now 250\n", out)
}
