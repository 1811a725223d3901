package admin

import (
	"context"
	"fmt"

	"pinopoly/internal/domain"
	"pinopoly/pkg/protocol"
)

// Difficulties the server's bots support.
var validDifficulties = map[string]bool{"easy": true, "normal": true, "hard": true}

// Service drives admin operations over both halves of the contract.
type Service struct {
	api  domain.AdminAPI
	conn domain.EventConn
}

// New constructs an admin Service. conn may be nil when only REST
// operations will be used.
func New(api domain.AdminAPI, conn domain.EventConn) *Service {
	return &Service{api: api, conn: conn}
}

// AddBot asks the server to seat a bot. Name may be empty; the server
// picks one.
func (s *Service) AddBot(name, difficulty string) error {
	if difficulty != "" && !validDifficulties[difficulty] {
		return fmt.Errorf("unknown difficulty %q", difficulty)
	}
	return s.emit(protocol.EventAddBot, protocol.AddBot{Name: name, Difficulty: difficulty})
}

// RemoveBot removes a bot by id.
func (s *Service) RemoveBot(botID string) error {
	if botID == "" {
		return fmt.Errorf("bot id required")
	}
	return s.emit(protocol.EventRemoveBot, protocol.BotRef{BotID: botID})
}

// SetBotDifficulty changes a bot's difficulty.
func (s *Service) SetBotDifficulty(botID, difficulty string) error {
	if botID == "" {
		return fmt.Errorf("bot id required")
	}
	if !validDifficulties[difficulty] {
		return fmt.Errorf("unknown difficulty %q", difficulty)
	}
	return s.emit(protocol.EventSetBotDifficulty, protocol.SetBotDifficulty{
		BotID: botID, Difficulty: difficulty,
	})
}

// StartGame starts the game.
func (s *Service) StartGame() error {
	return s.emit(protocol.EventStartGame, nil)
}

// ResetGame resets the game to its initial state.
func (s *Service) ResetGame() error {
	return s.emit(protocol.EventResetGame, nil)
}

// RemovePlayer removes a player from the game.
func (s *Service) RemovePlayer(playerID string) error {
	if playerID == "" {
		return fmt.Errorf("player id required")
	}
	return s.emit(protocol.EventRemovePlayer, protocol.PlayerRef{PlayerID: playerID})
}

// FinanceOverview fetches the bank-wide view.
func (s *Service) FinanceOverview(ctx context.Context) (protocol.AdminFinanceOverview, error) {
	return s.api.FinanceOverview(ctx)
}

// SetRates replaces the rate sheet.
func (s *Service) SetRates(ctx context.Context, rates protocol.InterestRates) error {
	return s.api.SetRates(ctx, rates)
}

// AdjustBalance credits or debits a player directly.
func (s *Service) AdjustBalance(ctx context.Context, playerID string, amount int, reason string) error {
	if playerID == "" {
		return fmt.Errorf("player id required")
	}
	if amount == 0 {
		return fmt.Errorf("adjustment amount must be non-zero")
	}
	return s.api.AdjustBalance(ctx, playerID, amount, reason)
}

func (s *Service) emit(event string, payload any) error {
	if s.conn == nil {
		return fmt.Errorf("no realtime connection; %s requires one", event)
	}
	return s.conn.Emit(event, payload)
}
