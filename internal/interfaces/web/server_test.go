package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"telegram-joke-bot/internal/application/usecases"
	"telegram-joke-bot/internal/domain/host"
	hostinfra "telegram-joke-bot/internal/infrastructure/host"
	"telegram-joke-bot/internal/infrastructure/memory"
	"telegram-joke-bot/internal/interfaces/gateway"
	"telegram-joke-bot/internal/interfaces/telegram/handlers"
)

func newTestServer(t *testing.T) (*Server, *usecases.JokeUseCase) {
	logger := zaptest.NewLogger(t)
	h := hostinfra.NewSystemHost("web-test", host.ClockFunc(func() uint64 { return 1 }))
	jokes := usecases.NewJokeUseCase(memory.NewJokeRepository(logger), h, logger)
	info := usecases.NewInfoUseCase(h, nil)
	bot := handlers.NewBotHandler(jokes, info, logger)
	gw := gateway.NewGateway(bot, info, usecases.NewCreditUseCase(h, logger), "", logger)
	return NewServer(":0", gw, logger), jokes
}

func serve(s *Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func update(text string) string {
	return `{"update_id":1,"message":{"message_id":1,"date":0,"chat":{"id":7,"type":"private"},"text":"` + text + `"}}`
}

func TestServer_Homepage(t *testing.T) {
	s, _ := newTestServer(t)

	w := serve(s, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "web-test")
}

func TestServer_NotFound(t *testing.T) {
	s, _ := newTestServer(t)

	w := serve(s, http.MethodGet, "/favicon.ico", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "/favicon.ico")
	assert.Empty(t, w.Header().Get("Content-Type"))

	w = serve(s, http.MethodPost, "/deep/path", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_Webhook(t *testing.T) {
	s, jokes := newTestServer(t)

	w := serve(s, http.MethodPost, "/webhook/abc", update("/telljoke knock knock"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"method":"sendMessage","chat_id":7,"text":"Ha! Ha! Duly noted."}`, w.Body.String())

	n, err := jokes.Count(testContext(t))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestServer_GetIsUpgraded(t *testing.T) {
	s, jokes := newTestServer(t)

	w := serve(s, http.MethodGet, "/webhook/abc", update("/telljoke knock knock"))
	require.Equal(t, http.StatusOK, w.Code)

	n, err := jokes.Count(testContext(t))
	require.NoError(t, err)
	assert.Equal(t, 2, n, "a query asking for an upgrade is re-run as an update")
}

func TestServer_MalformedBody(t *testing.T) {
	s, _ := newTestServer(t)

	w := serve(s, http.MethodPost, "/webhook/abc", "{")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "unexpected end of JSON input", w.Body.String())
	assert.Empty(t, w.Header().Get("Content-Type"))
}

func TestServer_BodyTooLarge(t *testing.T) {
	s, _ := newTestServer(t)

	w := serve(s, http.MethodPost, "/webhook/abc", strings.Repeat("x", MaxBodyBytes+1))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
