package handlers

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"telegram-joke-bot/internal/interfaces/telegram"
	"telegram-joke-bot/internal/interfaces/telegram/handlers/shared"
)

// handleStart processes the /start command
func (h *BotHandler) handleStart(ctx context.Context, cmd telegram.Command, mode telegram.Mode) (telegram.Reply, error) {
	return telegram.Reply{ChatID: cmd.ChatID, Text: shared.GreetingText}, nil
}

// handleJoke processes the /joke command
func (h *BotHandler) handleJoke(ctx context.Context, cmd telegram.Command, mode telegram.Mode) (telegram.Reply, error) {
	j, total, err := h.jokeUseCase.Random(ctx)
	if err != nil {
		return telegram.Reply{}, err
	}

	return telegram.Reply{ChatID: cmd.ChatID, Text: shared.FormatJokeText(j, total)}, nil
}

// handleTellJokeUsage processes /telljoke without a joke
func (h *BotHandler) handleTellJokeUsage(ctx context.Context, cmd telegram.Command, mode telegram.Mode) (telegram.Reply, error) {
	return telegram.Reply{ChatID: cmd.ChatID, Text: shared.TellJokeUsageText}, nil
}

// handleTellJoke processes /telljoke followed by a joke. Only update mode
// commits the joke; query mode acknowledges and asks for an upgrade.
func (h *BotHandler) handleTellJoke(ctx context.Context, cmd telegram.Command, mode telegram.Mode) (telegram.Reply, error) {
	if strings.TrimSpace(cmd.Args) == "" {
		return h.handleTellJokeUsage(ctx, cmd, mode)
	}

	if mode == telegram.ModeUpdate {
		if _, err := h.jokeUseCase.Tell(ctx, cmd.Args); err != nil {
			return telegram.Reply{}, err
		}
	} else {
		h.logger.Debug("Deferring joke to update call", zap.Int64("chat_id", cmd.ChatID))
	}

	return telegram.Reply{ChatID: cmd.ChatID, Text: shared.JokeNotedText, Upgrade: true}, nil
}

// handleInfo processes the /info command
func (h *BotHandler) handleInfo(ctx context.Context, cmd telegram.Command, mode telegram.Mode) (telegram.Reply, error) {
	return telegram.Reply{ChatID: cmd.ChatID, Text: h.infoUseCase.Info()}, nil
}

// handleUnknown answers anything that is not a command
func (h *BotHandler) handleUnknown(ctx context.Context, cmd telegram.Command, mode telegram.Mode) (telegram.Reply, error) {
	return telegram.Reply{ChatID: cmd.ChatID, Text: shared.FormatUnknownText(cmd.Text)}, nil
}
