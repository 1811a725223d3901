package admin_test

import (
	"testing"

	"pinopoly/internal/domain"
	"pinopoly/internal/services/admin"
	"pinopoly/pkg/protocol"
)

type recordConn struct {
	events []string
}

func (c *recordConn) On(string, domain.EventHandler) {}
func (c *recordConn) Emit(event string, _ any) error {
	c.events = append(c.events, event)
	return nil
}
func (c *recordConn) Errors() <-chan error { return nil }
func (c *recordConn) Close() error         { return nil }

func TestBotOps_EmitOnSocket(t *testing.T) {
	conn := &recordConn{}
	svc := admin.New(nil, conn)

	if err := svc.AddBot("HAL", "hard"); err != nil {
		t.Fatalf("add bot: %v", err)
	}
	if err := svc.SetBotDifficulty("b1", "easy"); err != nil {
		t.Fatalf("set difficulty: %v", err)
	}
	if err := svc.StartGame(); err != nil {
		t.Fatalf("start game: %v", err)
	}

	want := []string{protocol.EventAddBot, protocol.EventSetBotDifficulty, protocol.EventStartGame}
	if len(conn.events) != len(want) {
		t.Fatalf("events = %v", conn.events)
	}
	for i := range want {
		if conn.events[i] != want[i] {
			t.Fatalf("event[%d] = %q, want %q", i, conn.events[i], want[i])
		}
	}
}

func TestBotOps_Validate(t *testing.T) {
	svc := admin.New(nil, &recordConn{})

	if err := svc.AddBot("", "brutal"); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
	if err := svc.RemoveBot(""); err == nil {
		t.Fatal("expected error for empty bot id")
	}
	if err := svc.SetBotDifficulty("b1", ""); err == nil {
		t.Fatal("expected error for empty difficulty")
	}
}

func TestEmit_WithoutConnFails(t *testing.T) {
	svc := admin.New(nil, nil)
	if err := svc.StartGame(); err == nil {
		t.Fatal("expected error without a connection")
	}
}
