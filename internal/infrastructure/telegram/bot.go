package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Bot wraps the Telegram bot API. The bot answers updates inside the webhook
// response, so the client is only needed to register itself with Telegram.
type Bot struct {
	api    *tgbotapi.BotAPI
	logger *zap.Logger
}

// NewBot creates a new Telegram bot
func NewBot(token string, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	api.Debug = false
	logger.Info("Authorized on account", zap.String("username", api.Self.UserName))

	return &Bot{api: api, logger: logger}, nil
}

// Commands lists the commands shown in Telegram's menu
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "👋 Say hello",
		},
		{
			Command:     "joke",
			Description: "😂 Tell me a joke",
		},
		{
			Command:     "telljoke",
			Description: "✍️ Teach me a new joke",
		},
		{
			Command:     "info",
			Description: "ℹ️ About this bot",
		},
	}
}

// SetupCommands configures the bot commands with BotFather
func (b *Bot) SetupCommands() error {
	setCommands := tgbotapi.NewSetMyCommands(Commands()...)
	_, err := b.api.Request(setCommands)
	if err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}

	b.logger.Info("Bot commands configured successfully")
	return nil
}

// WebhookURL joins the public base URL with the webhook path for token
func WebhookURL(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/webhook/" + token
}

// RegisterWebhook points Telegram at this bot's webhook endpoint
func (b *Bot) RegisterWebhook(baseURL, token string) error {
	wh, err := tgbotapi.NewWebhook(WebhookURL(baseURL, token))
	if err != nil {
		return fmt.Errorf("failed to build webhook config: %w", err)
	}

	if _, err := b.api.Request(wh); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}

	b.logger.Info("Webhook registered", zap.String("base_url", baseURL))
	return nil
}
