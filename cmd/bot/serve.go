package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"telegram-joke-bot/internal/infrastructure/telegram"
	"telegram-joke-bot/internal/interfaces/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the homepage and the Telegram webhook over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.cfg.Telegram.WebhookSecret == "" {
		a.logger.Warn("No webhook secret configured, accepting any webhook token")
	}

	registerWithTelegram(a)

	a.logger.Info("Starting Telegram joke bot",
		zap.String("id", a.host.ID()),
		zap.String("storage", a.cfg.Storage.Driver))

	return web.NewServer(a.cfg.Server.Addr, a.gateway, a.logger).Serve(ctx)
}

// registerWithTelegram sets up the command menu and webhook when a token is
// configured. Failures are logged; the bot still answers webhook calls.
func registerWithTelegram(a *app) {
	if a.cfg.Telegram.Token == "" {
		return
	}

	bot, err := telegram.NewBot(a.cfg.Telegram.Token, a.logger)
	if err != nil {
		a.logger.Warn("Failed to create Telegram client", zap.Error(err))
		return
	}

	if err := bot.SetupCommands(); err != nil {
		a.logger.Warn("Failed to setup bot commands, they won't show in Telegram's menu", zap.Error(err))
	}

	if a.cfg.Telegram.WebhookURL == "" {
		return
	}

	token := a.cfg.Telegram.WebhookSecret
	if token == "" {
		token = "hook"
	}
	if err := bot.RegisterWebhook(a.cfg.Telegram.WebhookURL, token); err != nil {
		a.logger.Warn("Failed to register webhook", zap.Error(err))
	}
}
