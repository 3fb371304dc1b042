package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"telegram-joke-bot/internal/interfaces/gateway"
)

// MaxBodyBytes caps the size of an inbound request body
const MaxBodyBytes = 1 << 20

// Server exposes the gateway over net/http
type Server struct {
	addr       string
	gateway    *gateway.Gateway
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// NewServer creates a new server listening on addr
func NewServer(addr string, gw *gateway.Gateway, logger *zap.Logger) *Server {
	s := &Server{
		addr:    addr,
		gateway: gw,
		logger:  logger,
	}

	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	// The gateway owns routing, including not-found answers.
	r.Handle("/*", http.HandlerFunc(s.handle))
	r.NotFound(s.handle)

	return r
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler { return s.router }

// Serve listens until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", s.addr))
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		s.logger.Info("HTTP server stopping")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		return nil
	}
}

// handle converts the request, evaluates it and writes the result back.
// Safe methods go through the read-only entry point first and are upgraded
// when the gateway asks for it; all other methods go straight to Update.
func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	req, err := toGatewayRequest(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	var resp gateway.Response
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		resp = s.gateway.Query(r.Context(), req)
		if resp.Upgrade {
			s.logger.Debug("Upgrading query to update", zap.String("url", req.URL))
			resp = s.gateway.Update(r.Context(), req)
		}
	default:
		resp = s.gateway.Update(r.Context(), req)
	}

	writeResponse(w, resp)
}

func toGatewayRequest(w http.ResponseWriter, r *http.Request) (gateway.Request, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return gateway.Request{}, fmt.Errorf("reading body: %w", err)
	}

	var headers []gateway.HeaderField
	for key, values := range r.Header {
		for _, v := range values {
			headers = append(headers, gateway.HeaderField{Key: key, Value: v})
		}
	}

	return gateway.Request{
		Method:  r.Method,
		URL:     r.URL.RequestURI(),
		Headers: headers,
		Body:    body,
	}, nil
}

func writeResponse(w http.ResponseWriter, resp gateway.Response) {
	if _, ok := resp.Header("Content-Type"); !ok {
		// A nil value stops net/http from sniffing one.
		w.Header()["Content-Type"] = nil
	}
	for _, h := range resp.Headers {
		w.Header().Add(h.Key, h.Value)
	}
	w.WriteHeader(resp.StatusCode)
	w.Write(resp.Body)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info("Request served",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)))
	})
}
