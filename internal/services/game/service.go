package game

import (
	"context"

	"go.uber.org/zap"

	"pinopoly/internal/domain"
	"pinopoly/internal/session"
	"pinopoly/internal/socket"
	"pinopoly/pkg/protocol"
)

// Service builds live game sessions.
type Service struct {
	socketURL string
	log       *zap.Logger
}

// New constructs a game Service for the given ws:// endpoint.
func New(socketURL string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{socketURL: socketURL, log: log}
}

// Join dials the channel with the profile's credentials and returns a
// synced session. The caller owns the connection and must Close it.
func (s *Service) Join(ctx context.Context, profile domain.Profile) (*session.Session, domain.EventConn, error) {
	conn, err := socket.Dial(ctx, socket.Config{
		URL:         s.socketURL,
		Profile:     profile,
		Reconnect:   true,
		ResyncEvent: protocol.EventRequestGameState,
		Logger:      s.log,
	})
	if err != nil {
		return nil, nil, err
	}

	sess := session.New(conn, profile.PlayerID, s.log)
	if err := sess.Sync(); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return sess, conn, nil
}
