package gateway

import (
	"context"
	"crypto/subtle"
	"strings"

	"go.uber.org/zap"

	"telegram-joke-bot/internal/application/usecases"
	"telegram-joke-bot/internal/interfaces/telegram"
	"telegram-joke-bot/internal/interfaces/telegram/handlers"
)

// WebhookPrefix is the path prefix Telegram delivers updates under
const WebhookPrefix = "/webhook/"

// Gateway routes HTTP-shaped requests to the homepage, the webhook pipeline or
// the not-found handler
type Gateway struct {
	botHandler    *handlers.BotHandler
	infoUseCase   *usecases.InfoUseCase
	creditUseCase *usecases.CreditUseCase
	webhookSecret string
	logger        *zap.Logger
}

// NewGateway creates a new gateway. An empty webhookSecret accepts any token.
func NewGateway(
	botHandler *handlers.BotHandler,
	infoUseCase *usecases.InfoUseCase,
	creditUseCase *usecases.CreditUseCase,
	webhookSecret string,
	logger *zap.Logger,
) *Gateway {
	return &Gateway{
		botHandler:    botHandler,
		infoUseCase:   infoUseCase,
		creditUseCase: creditUseCase,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// Query evaluates a request without committing any state change
func (g *Gateway) Query(ctx context.Context, req Request) Response {
	return g.Dispatch(ctx, req, telegram.ModeQuery)
}

// Update evaluates a request and commits state changes
func (g *Gateway) Update(ctx context.Context, req Request) Response {
	return g.Dispatch(ctx, req, telegram.ModeUpdate)
}

// AcceptCredits is the donation hook; it takes everything available
func (g *Gateway) AcceptCredits(ctx context.Context, available uint64) uint64 {
	return g.creditUseCase.Accept(available)
}

// Dispatch routes a request by its path
func (g *Gateway) Dispatch(ctx context.Context, req Request, mode telegram.Mode) Response {
	path := req.Path()

	if token, ok := strings.CutPrefix(path, WebhookPrefix); ok {
		if !g.validToken(token) {
			g.logger.Warn("Rejected webhook call with invalid token", zap.String("method", req.Method))
			return err403()
		}
		return g.handleWebhook(ctx, req, mode)
	}

	if path == "/" {
		return index(g.infoUseCase.Info())
	}

	g.logger.Debug("No route for request", zap.String("url", req.URL))
	return err404(req.URL)
}

func (g *Gateway) validToken(token string) bool {
	if g.webhookSecret == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(g.webhookSecret)) == 1
}

// handleWebhook decodes a Telegram update and answers text messages
func (g *Gateway) handleWebhook(ctx context.Context, req Request, mode telegram.Mode) Response {
	update, err := telegram.DecodeUpdate(req.Body)
	if err != nil {
		g.logger.Warn("Failed to decode update", zap.Error(err))
		return err500(err)
	}

	switch u := update.(type) {
	case telegram.TextMessage:
		return g.handleMessage(ctx, u, mode)
	case telegram.Ignored:
		g.logger.Debug("Ignoring update", zap.String("kind", u.Kind))
		return ok200()
	default:
		return ok200()
	}
}

func (g *Gateway) handleMessage(ctx context.Context, msg telegram.TextMessage, mode telegram.Mode) Response {
	reply, err := g.botHandler.Handle(ctx, msg.ChatID, msg.Text, mode)
	if err != nil {
		g.logger.Error("Failed to handle message", zap.Int64("chat_id", msg.ChatID), zap.Error(err))
		return err500(err)
	}

	body, err := telegram.NewEnvelope(reply).Encode()
	if err != nil {
		g.logger.Error("Failed to encode reply", zap.Error(err))
		return err500(err)
	}

	return jsonResponse(body, reply.Upgrade)
}
