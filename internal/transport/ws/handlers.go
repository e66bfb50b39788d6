package ws

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/kiryu-dev/wall-go/internal/domain"
	"go.uber.org/zap"
)

func (s *server) serveWs(w http.ResponseWriter, r *http.Request) {
	clientUuid := strings.TrimSpace(r.Header.Get(domain.ClientUuidHeader))
	if clientUuid == "" {
		clientUuid = uuid.NewString()
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error(err.Error())
		return
	}
	s.logger.Info("new connection", zap.String("client", clientUuid))
	client := newClient(conn, clientUuid)
	defer client.Close()
	if err := s.hub.Handle(r.Context(), client); err != nil {
		s.logger.Error(err.Error(), zap.String("client", clientUuid))
	}
}

func (s *server) healthCheck(w http.ResponseWriter, _ *http.Request) {
	resp := domain.HealthCheckResponse{
		Status:   "ok",
		Sessions: s.hub.ActiveSessions(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := jsoniter.NewEncoder(w).Encode(resp); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		s.logger.Warn(err.Error())
	}
}

func (s *server) session(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.hub.Session(chi.URLParam(r, "uuid"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := jsoniter.NewEncoder(w).Encode(snapshot); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		s.logger.Warn(err.Error())
	}
}
