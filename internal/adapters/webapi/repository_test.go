package webapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/kiryu-dev/wall-go/internal/domain"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		_ = jsoniter.NewEncoder(w).Encode(domain.HealthCheckResponse{Status: "ok", Sessions: 3})
	})
	mux.HandleFunc("/sessions/known", func(w http.ResponseWriter, _ *http.Request) {
		_ = jsoniter.NewEncoder(w).Encode(domain.Snapshot{
			SessionUuid: "known",
			State:       domain.GameState{Phase: domain.Playing, CurrentPlayer: domain.Player2},
		})
	})
	mux.HandleFunc("/sessions/broken", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)
	resp, err := New(ts.URL).HealthCheck(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", resp.Status)
	require.Equal(t, int64(3), resp.Sessions)
}

func TestSession(t *testing.T) {
	ts := newTestServer(t)
	repo := New(ts.URL)

	snapshot, err := repo.Session(context.Background(), "known")
	require.NoError(t, err)
	require.Equal(t, "known", snapshot.SessionUuid)
	require.Equal(t, domain.Player2, snapshot.State.CurrentPlayer)

	_, err = repo.Session(context.Background(), "missing")
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = repo.Session(context.Background(), "broken")
	require.ErrorContains(t, err, "unexpected response status")
}
