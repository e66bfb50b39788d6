package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/kiryu-dev/wall-go/internal/domain"
	"github.com/kiryu-dev/wall-go/internal/usecase/game"
	"github.com/kiryu-dev/wall-go/internal/usecase/hub"
	"github.com/kiryu-dev/wall-go/pkg/utils"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zap.NewNop()
	h := hub.New(func() domain.EngineUseCase {
		return game.New(logger)
	}, time.Minute, time.Minute, logger)
	ts := httptest.NewServer(New(":0", h, logger).routes())
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server, clientKey string) *websocket.Conn {
	t.Helper()
	header := http.Header{}
	if clientKey != "" {
		header.Set(domain.ClientUuidHeader, clientKey)
	}
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/game"
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = conn.Close()
	})
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) domain.Snapshot {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg domain.Message
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, domain.SnapshotMessage, msg.Type)
	snapshot, err := utils.UnmarshalJson[domain.Snapshot](msg.Payload)
	require.NoError(t, err)
	return snapshot
}

func sendCommand(t *testing.T, conn *websocket.Conn, cmd domain.Command) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(domain.Message{Type: domain.CommandMessage, Payload: cmd}))
}

func TestGameOverWebsocket(t *testing.T) {
	ts := newTestServer(t)
	conn := dial(t, ts, "terminal-1")

	snapshot := readSnapshot(t, conn)
	require.Equal(t, domain.Setup, snapshot.State.Phase)

	positions := []domain.Position{
		{Row: 0, Col: 0}, {Row: 6, Col: 6}, {Row: 0, Col: 6}, {Row: 6, Col: 0},
		{Row: 2, Col: 2}, {Row: 4, Col: 4}, {Row: 2, Col: 4}, {Row: 4, Col: 2},
	}
	for _, p := range positions {
		sendCommand(t, conn, domain.Command{Type: domain.PlacePieceCommand, Position: p})
		snapshot = readSnapshot(t, conn)
	}
	require.Equal(t, domain.Playing, snapshot.State.Phase)
	require.Len(t, snapshot.State.Pieces, 8)

	sendCommand(t, conn, domain.Command{Type: domain.SelectPieceCommand, PieceID: 5})
	snapshot = readSnapshot(t, conn)
	require.Equal(t, domain.PieceID(5), snapshot.State.SelectedPiece)
	require.Len(t, snapshot.ValidMoves, 4)
	require.Empty(t, snapshot.ValidWalls)

	sendCommand(t, conn, domain.Command{Type: domain.MovePieceCommand, Position: domain.Position{Row: 2, Col: 3}})
	snapshot = readSnapshot(t, conn)
	require.Len(t, snapshot.ValidWalls, 4)

	sendCommand(t, conn, domain.Command{
		Type:        domain.PlaceWallCommand,
		Position:    domain.Position{Row: 2, Col: 4},
		Orientation: domain.Vertical,
	})
	snapshot = readSnapshot(t, conn)
	require.Len(t, snapshot.State.Walls, 1)
	require.Equal(t, domain.Player2, snapshot.State.CurrentPlayer)
	require.False(t, snapshot.IsGameOver)

	t.Run("session endpoint", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/sessions/" + snapshot.SessionUuid)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var stored domain.Snapshot
		require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&stored))
		require.Equal(t, snapshot.SessionUuid, stored.SessionUuid)
		require.Len(t, stored.State.Walls, 1)
	})
	t.Run("unknown session", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/sessions/nope")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestErrorMessage(t *testing.T) {
	ts := newTestServer(t)
	conn := dial(t, ts, "")
	readSnapshot(t, conn)

	for _, payload := range []any{map[string]any{"Type": 99}, nil, map[string]any{}} {
		require.NoError(t, conn.WriteJSON(domain.Message{Type: domain.CommandMessage, Payload: payload}))
		var msg domain.Message
		require.NoError(t, conn.ReadJSON(&msg))
		require.Equal(t, domain.ErrorMessage, msg.Type, "payload %#v", payload)
	}

	sendCommand(t, conn, domain.Command{Type: domain.PlacePieceCommand, Position: domain.Position{Row: 1, Col: 1}})
	require.Len(t, readSnapshot(t, conn).State.Pieces, 1)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)
	conn := dial(t, ts, "health-client")
	readSnapshot(t, conn)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var health domain.HealthCheckResponse
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, int64(1), health.Sessions)
}
