package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/kiryu-dev/wall-go/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const readHeaderTimeout = 5 * time.Second

type server struct {
	srv      *http.Server
	hub      domain.HubUseCase
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func New(addr string, hub domain.HubUseCase, logger *zap.Logger) *server {
	s := &server{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger,
	}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/game", s.serveWs)
	r.Get("/health", s.healthCheck)
	r.Get("/sessions/{uuid}", s.session)
	return r
}

// ListenAndServe blocks until the server stops. A graceful shutdown is not
// reported as an error.
func (s *server) ListenAndServe() error {
	s.logger.Info("starting listening address: " + s.srv.Addr)
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return errors.WithMessage(err, "listen and serve")
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
