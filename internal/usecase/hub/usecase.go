package hub

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kiryu-dev/wall-go/internal/domain"
	"github.com/kiryu-dev/wall-go/pkg/utils"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

type session struct {
	uuid      string
	clientKey string
	engine    domain.EngineUseCase
	lastSeen  time.Time
	connected int
	mu        sync.Mutex
}

type useCase struct {
	newEngine   domain.EngineFactory
	sessions    map[string]*session
	byClient    map[string]string
	active      *atomic.Int64
	idleTimeout time.Duration
	sweepPeriod time.Duration
	now         func() time.Time
	mu          *sync.RWMutex
	logger      *zap.Logger
}

func New(newEngine domain.EngineFactory, idleTimeout, sweepPeriod time.Duration, logger *zap.Logger) *useCase {
	return &useCase{
		newEngine:   newEngine,
		sessions:    make(map[string]*session),
		byClient:    make(map[string]string),
		active:      atomic.NewInt64(0),
		idleTimeout: idleTimeout,
		sweepPeriod: sweepPeriod,
		now:         time.Now,
		mu:          &sync.RWMutex{},
		logger:      logger,
	}
}

func (u *useCase) Handle(ctx context.Context, client domain.Client) error {
	sess := u.attach(client)
	defer u.detach(sess)
	if err := client.WriteMessage(u.snapshotMessage(sess)); err != nil {
		return errors.WithMessage(err, "send initial snapshot")
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		msg, err := client.ReadMessage()
		switch {
		case errors.Is(err, domain.ErrConnectionClosed):
			return nil
		case err != nil:
			return errors.WithMessage(err, "read message from client")
		}
		cmd, err := decodeCommand(msg)
		if err != nil {
			u.logger.Warn("rejected message", zap.String("session", sess.uuid), zap.Error(err))
			if err := client.WriteMessage(errorMessage(err)); err != nil {
				return errors.WithMessage(err, "send error message")
			}
			continue
		}
		u.apply(sess, cmd)
		if err := client.WriteMessage(u.snapshotMessage(sess)); err != nil {
			return errors.WithMessage(err, "send snapshot")
		}
	}
}

// attach resumes the session bound to the client key or starts a new one.
func (u *useCase) attach(client domain.Client) *session {
	u.mu.Lock()
	defer u.mu.Unlock()
	clientKey := client.Uuid()
	if sessionUuid, ok := u.byClient[clientKey]; ok && clientKey != "" {
		if sess, ok := u.sessions[sessionUuid]; ok {
			sess.mu.Lock()
			sess.connected++
			sess.lastSeen = u.now()
			sess.mu.Unlock()
			u.logger.Info("resumed session", zap.String("session", sess.uuid), zap.String("client", clientKey))
			return sess
		}
	}
	sess := &session{
		uuid:      uuid.NewString(),
		clientKey: clientKey,
		engine:    u.newEngine(),
		lastSeen:  u.now(),
		connected: 1,
	}
	u.sessions[sess.uuid] = sess
	if clientKey != "" {
		u.byClient[clientKey] = sess.uuid
	}
	u.active.Inc()
	u.logger.Info("created session", zap.String("session", sess.uuid), zap.String("client", clientKey))
	return sess
}

func (u *useCase) detach(sess *session) {
	sess.mu.Lock()
	sess.connected--
	sess.lastSeen = u.now()
	sess.mu.Unlock()
}

func (u *useCase) apply(sess *session, cmd domain.Command) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastSeen = u.now()
	if !sess.engine.Apply(cmd) {
		u.logger.Debug("command had no effect",
			zap.String("session", sess.uuid),
			zap.String("command", cmd.Type.String()))
	}
}

func (u *useCase) snapshotMessage(sess *session) domain.Message {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return domain.Message{
		Type:    domain.SnapshotMessage,
		Payload: newSnapshot(sess.uuid, sess.engine),
	}
}

func (u *useCase) Session(sessionUuid string) (domain.Snapshot, bool) {
	u.mu.RLock()
	sess, ok := u.sessions[sessionUuid]
	u.mu.RUnlock()
	if !ok {
		return domain.Snapshot{}, false
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return newSnapshot(sess.uuid, sess.engine), true
}

func (u *useCase) ActiveSessions() int64 {
	return u.active.Load()
}

// Sweep periodically drops disconnected sessions that have been idle longer
// than the configured timeout. It returns when ctx is done.
func (u *useCase) Sweep(ctx context.Context) {
	ticker := time.NewTicker(u.sweepPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := u.removeIdleSessions(); removed > 0 {
				u.logger.Info("removed idle sessions",
					zap.Int("removed", removed),
					zap.Int64("active", u.active.Load()))
			}
		}
	}
}

func (u *useCase) removeIdleSessions() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	now := u.now()
	removed := 0
	for sessionUuid, sess := range u.sessions {
		sess.mu.Lock()
		idle := sess.connected == 0 && now.Sub(sess.lastSeen) > u.idleTimeout
		sess.mu.Unlock()
		if !idle {
			continue
		}
		delete(u.sessions, sessionUuid)
		if u.byClient[sess.clientKey] == sessionUuid {
			delete(u.byClient, sess.clientKey)
		}
		removed++
	}
	u.active.Sub(int64(removed))
	return removed
}

func decodeCommand(msg domain.Message) (domain.Command, error) {
	if msg.Type != domain.CommandMessage {
		return domain.Command{}, errors.Errorf("unexpected message type '%d'", msg.Type)
	}
	if msg.Payload == nil {
		return domain.Command{}, errors.WithMessage(domain.ErrUnknownCommand, "empty payload")
	}
	cmd, err := utils.UnmarshalJson[domain.Command](msg.Payload)
	if err != nil {
		return domain.Command{}, errors.WithMessage(err, "unmarshal command")
	}
	if cmd.Type < domain.PlacePieceCommand || cmd.Type > domain.RestartCommand {
		return domain.Command{}, errors.WithMessagef(domain.ErrUnknownCommand, "type '%d'", cmd.Type)
	}
	if cmd.Type == domain.PlaceWallCommand &&
		cmd.Orientation != domain.Horizontal && cmd.Orientation != domain.Vertical {
		return domain.Command{}, errors.Errorf("unknown wall orientation '%s'", cmd.Orientation)
	}
	return cmd, nil
}

func errorMessage(err error) domain.Message {
	return domain.Message{
		Type:    domain.ErrorMessage,
		Payload: domain.ErrorPayload{Message: err.Error()},
	}
}

func newSnapshot(sessionUuid string, engine domain.EngineUseCase) domain.Snapshot {
	return domain.Snapshot{
		SessionUuid: sessionUuid,
		State:       engine.State(),
		ValidMoves:  engine.ValidMoves(),
		ValidWalls:  engine.ValidWallPlacements(),
		Enclosed:    enclosedCells(engine.EnclosedRegions()),
		IsGameOver:  engine.IsGameOver(),
		Winner:      engine.Winner(),
	}
}

// enclosedCells flattens the shading map in row-major order.
func enclosedCells(regions map[domain.Position]domain.Player) []domain.EnclosedCell {
	cells := make([]domain.EnclosedCell, 0, len(regions))
	for row := 0; row < domain.GridSize; row++ {
		for col := 0; col < domain.GridSize; col++ {
			pos := domain.Position{Row: row, Col: col}
			if player, ok := regions[pos]; ok {
				cells = append(cells, domain.EnclosedCell{Position: pos, Player: player})
			}
		}
	}
	return cells
}
