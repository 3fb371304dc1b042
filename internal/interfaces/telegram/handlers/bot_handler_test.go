package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"telegram-joke-bot/internal/application/usecases"
	"telegram-joke-bot/internal/infrastructure/memory"
	"telegram-joke-bot/internal/interfaces/telegram"
)

type testHost struct {
	now uint64
}

func (h *testHost) ID() string                    { return "test-bot" }
func (h *testHost) Now() uint64                   { return h.now }
func (h *testHost) Balance() uint64               { return 7 }
func (h *testHost) AcceptCredits(a uint64) uint64 { return a }

func newTestHandler(t *testing.T) (*BotHandler, *testHost, *usecases.JokeUseCase) {
	logger := zaptest.NewLogger(t)
	h := &testHost{}
	jokes := usecases.NewJokeUseCase(memory.NewJokeRepository(logger), h, logger)
	info := usecases.NewInfoUseCase(h, nil)
	return NewBotHandler(jokes, info, logger), h, jokes
}

func TestBotHandler_Start(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	r, err := handler.Handle(context.Background(), 42, "/start", telegram.ModeQuery)
	require.NoError(t, err)
	assert.Equal(t, int64(42), r.ChatID)
	assert.Regexp(t, "^Hello!", r.Text)
	assert.False(t, r.Upgrade)
}

func TestBotHandler_Joke(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	r, err := handler.Handle(context.Background(), 42, "/joke", telegram.ModeQuery)
	require.NoError(t, err)
	assert.Contains(t, r.Text, "Joke 1 of 1:\n")
	assert.Contains(t, r.Text, "dom-minions")
	assert.False(t, r.Upgrade)
}

func TestBotHandler_TellJoke(t *testing.T) {
	ctx := context.Background()
	handler, h, jokes := newTestHandler(t)

	r, err := handler.Handle(ctx, 42, "/telljoke Why did the chicken cross the road?", telegram.ModeUpdate)
	require.NoError(t, err)
	assert.Equal(t, "Ha! Ha! Duly noted.", r.Text)
	assert.True(t, r.Upgrade)

	n, err := jokes.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	h.now = 1
	r, err = handler.Handle(ctx, 42, "/joke", telegram.ModeQuery)
	require.NoError(t, err)
	assert.Equal(t, "Joke 2 of 2:\nWhy did the chicken cross the road?\n(Got a better one? Tell me about it, with /telljoke …!)", r.Text)
}

func TestBotHandler_TellJokeQueryDoesNotCommit(t *testing.T) {
	ctx := context.Background()
	handler, _, jokes := newTestHandler(t)

	r, err := handler.Handle(ctx, 42, "/telljoke knock knock", telegram.ModeQuery)
	require.NoError(t, err)
	assert.True(t, r.Upgrade, "query mode must ask for an upgrade")

	n, err := jokes.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBotHandler_TellJokeUsage(t *testing.T) {
	ctx := context.Background()
	handler, _, jokes := newTestHandler(t)

	for _, text := range []string{"/telljoke", "/telljoke ", "/telljoke   "} {
		r, err := handler.Handle(ctx, 42, text, telegram.ModeUpdate)
		require.NoError(t, err)
		assert.Equal(t, "Put the joke after /telljoke!", r.Text, "%q", text)
		assert.False(t, r.Upgrade)
	}

	n, err := jokes.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBotHandler_Info(t *testing.T) {
	handler, h, _ := newTestHandler(t)
	ctx := context.Background()

	h.now = 100
	first, err := handler.Handle(ctx, 42, "/info", telegram.ModeQuery)
	require.NoError(t, err)
	assert.Contains(t, first.Text, "My process id: test-bot")

	h.now = 200
	second, err := handler.Handle(ctx, 42, "/info", telegram.ModeQuery)
	require.NoError(t, err)

	assert.NotEqual(t, first.Text, second.Text)
	assert.Equal(t,
		first.Text,
		strings.Replace(second.Text, "Local time is 200ns.", "Local time is 100ns.", 1),
		"bodies may only differ in the embedded time")
}

func TestBotHandler_Unknown(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	r, err := handler.Handle(context.Background(), 42, "banana", telegram.ModeQuery)
	require.NoError(t, err)
	assert.Equal(t, "What do you mean, banana?", r.Text)
	assert.False(t, r.Upgrade)
}

func TestBotHandler_JokeRoundTrip(t *testing.T) {
	ctx := context.Background()
	handler, h, _ := newTestHandler(t)

	_, err := handler.Handle(ctx, 42, "/telljoke I'm reading a book about anti-gravity.", telegram.ModeUpdate)
	require.NoError(t, err)

	seen := false
	for i := 0; i < 50 && !seen; i++ {
		h.now = uint64(i * 1_000_003)
		r, err := handler.Handle(ctx, 42, "/joke", telegram.ModeQuery)
		require.NoError(t, err)
		seen = strings.Contains(r.Text, "anti-gravity")
	}
	assert.True(t, seen, "learned joke never came up")
}
