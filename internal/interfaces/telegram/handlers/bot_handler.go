package handlers

import (
	"context"

	"go.uber.org/zap"

	"telegram-joke-bot/internal/application/usecases"
	"telegram-joke-bot/internal/interfaces/telegram"
)

// BotHandler answers chat messages with replies
type BotHandler struct {
	jokeUseCase *usecases.JokeUseCase
	infoUseCase *usecases.InfoUseCase
	dispatcher  telegram.Dispatcher
	logger      *zap.Logger
}

// NewBotHandler creates a new bot handler with all commands registered
func NewBotHandler(
	jokeUseCase *usecases.JokeUseCase,
	infoUseCase *usecases.InfoUseCase,
	logger *zap.Logger,
) *BotHandler {
	h := &BotHandler{
		jokeUseCase: jokeUseCase,
		infoUseCase: infoUseCase,
		logger:      logger,
	}

	d := telegram.NewDispatcher(h.handleUnknown)
	d.RegisterHandler("/start", h.handleStart)
	d.RegisterHandler("/joke", h.handleJoke)
	d.RegisterHandler("/telljoke", h.handleTellJokeUsage)
	d.RegisterHandler("/info", h.handleInfo)
	d.RegisterPrefix("/telljoke ", h.handleTellJoke)
	h.dispatcher = d

	return h
}

// Handle processes the text of a chat message. Errors only come from the
// joke store.
func (h *BotHandler) Handle(ctx context.Context, chatID int64, text string, mode telegram.Mode) (telegram.Reply, error) {
	h.logger.Debug("Handling message",
		zap.Int64("chat_id", chatID),
		zap.String("text", text),
		zap.Stringer("mode", mode))

	return h.dispatcher.Dispatch(ctx, telegram.TextMessage{ChatID: chatID, Text: text}, mode)
}
