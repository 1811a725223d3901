package stub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"pinopoly/pkg/protocol"
)

// Server holds the stub's entire world in memory.
type Server struct {
	log        *zap.Logger
	adminKey   string
	displayKey string

	mu         sync.Mutex
	state      protocol.GameState
	portfolios map[string]*protocol.Portfolio // by player id
	pins       map[string]string              // username -> pin
	tokens     map[string]string              // player id -> token
	rates      protocol.InterestRates
	tunnel     protocol.TunnelStatus
	conns      map[*websocket.Conn]*sync.Mutex
	seq        int
}

// New seeds a stub server. adminKey and displayKey gate the respective
// auth endpoints.
func New(adminKey, displayKey string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		log:        log,
		adminKey:   adminKey,
		displayKey: displayKey,
		state: protocol.GameState{
			Properties: demoBoard(),
			Lap:        1,
			Economy:    &protocol.EconomicState{Phase: "stable", BaseRate: 0.05, Lap: 1},
		},
		portfolios: make(map[string]*protocol.Portfolio),
		pins:       make(map[string]string),
		tokens:     make(map[string]string),
		rates:      defaultRates(),
		conns:      make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Handler returns the full REST + socket surface.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Post("/api/auth/login", s.handleLogin)
	r.Post("/api/auth/register", s.handleLogin) // stub: register == login
	r.Post("/api/auth/admin", s.handleAdminAuth)
	r.Post("/api/auth/display", s.handleDisplayAuth)

	r.Get("/public/board/properties", s.handleProperties)
	r.Get("/public/board/players", s.handlePlayers)
	r.Get("/api/player/{id}/properties", s.handlePlayerProperties)

	r.Get("/api/finance/loans", s.handlePortfolio)
	r.Get("/api/finance/interest-rates", s.handleRates)
	r.Post("/api/finance/loan/new", s.handleNewLoan)
	r.Post("/api/finance/cd/new", s.handleNewCD)
	r.Post("/api/finance/loan/repay", s.handleRepay)
	r.Post("/api/finance/cd/withdraw", s.handleWithdraw)

	r.Get("/api/remote/status", s.handleTunnelStatus)
	r.Post("/api/remote/start", s.handleTunnelStart)
	r.Post("/api/remote/stop", s.handleTunnelStop)
	r.Get("/api/remote/url", s.handleTunnelURL)

	r.Route("/api/admin/finance", func(r chi.Router) {
		r.Use(s.requireAdmin)
		r.Get("/overview", s.handleAdminOverview)
		r.Post("/rates", s.handleAdminRates)
		r.Post("/adjust", s.handleAdminAdjust)
	})

	r.Get("/ws", s.handleSocket)
	return r
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Admin-Key") != s.adminKey {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		PIN      string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if pin, ok := s.pins[req.Username]; ok && pin != req.PIN {
		s.mu.Unlock()
		http.Error(w, "wrong pin", http.StatusUnauthorized)
		return
	}
	s.pins[req.Username] = req.PIN

	var player *protocol.Player
	for i := range s.state.Players {
		if s.state.Players[i].Name == req.Username {
			player = &s.state.Players[i]
		}
	}
	if player == nil {
		s.seq++
		s.state.Players = append(s.state.Players, protocol.Player{
			ID:        fmt.Sprintf("p%d", s.seq),
			Name:      req.Username,
			Balance:   1500,
			Connected: false,
			TurnOrder: len(s.state.Players),
		})
		player = &s.state.Players[len(s.state.Players)-1]
	}
	token := uuid.NewString()
	s.tokens[player.ID] = token
	resp := map[string]string{
		"player_id": player.ID,
		"username":  player.Name,
		"token":     token,
	}
	s.mu.Unlock()

	writeJSON(w, resp)
}

func (s *Server) handleAdminAuth(w http.ResponseWriter, r *http.Request) {
	s.handleKeyAuth(w, r, s.adminKey)
}

func (s *Server) handleDisplayAuth(w http.ResponseWriter, r *http.Request) {
	s.handleKeyAuth(w, r, s.displayKey)
}

func (s *Server) handleKeyAuth(w http.ResponseWriter, r *http.Request, want string) {
	var req struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if req.Key != want {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleProperties(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	props := append([]protocol.Property(nil), s.state.Properties...)
	s.mu.Unlock()
	writeJSON(w, props)
}

func (s *Server) handlePlayers(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	players := append([]protocol.Player(nil), s.state.Players...)
	s.mu.Unlock()
	writeJSON(w, players)
}

func (s *Server) handlePlayerProperties(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	var owned []protocol.Property
	for _, p := range s.state.Properties {
		if p.OwnerID == id {
			owned = append(owned, p)
		}
	}
	s.mu.Unlock()
	if owned == nil {
		owned = []protocol.Property{}
	}
	writeJSON(w, owned)
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	pid := r.Header.Get("X-Player-ID")
	if pid == "" {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	s.mu.Lock()
	pf := s.portfolio(pid)
	out := protocol.Portfolio{
		Loans: append([]protocol.Loan(nil), pf.Loans...),
		CDs:   append([]protocol.CD(nil), pf.CDs...),
	}
	s.mu.Unlock()
	writeJSON(w, out)
}

func (s *Server) handleRates(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	rates := s.rates
	s.mu.Unlock()
	writeJSON(w, rates)
}

func (s *Server) handleNewLoan(w http.ResponseWriter, r *http.Request) {
	pid := r.Header.Get("X-Player-ID")
	var req struct {
		Type         string `json:"type"`
		Amount       int    `json:"amount"`
		TermLaps     int    `json:"term_laps"`
		CollateralID string `json:"collateral_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || pid == "" || req.Amount <= 0 {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.seq++
	rate := s.rates.LoanRate
	if req.Type == "heloc" {
		rate = s.rates.HELOCRate
	}
	loan := protocol.Loan{
		ID:            fmt.Sprintf("loan-%d", s.seq),
		PlayerID:      pid,
		Type:          req.Type,
		Principal:     req.Amount,
		Balance:       req.Amount,
		Rate:          rate,
		TermLaps:      req.TermLaps,
		LapsRemaining: req.TermLaps,
		CollateralID:  req.CollateralID,
	}
	pf := s.portfolio(pid)
	pf.Loans = append(pf.Loans, loan)
	s.credit(pid, req.Amount)
	s.mu.Unlock()

	writeJSON(w, loan)
}

func (s *Server) handleNewCD(w http.ResponseWriter, r *http.Request) {
	pid := r.Header.Get("X-Player-ID")
	var req struct {
		Amount   int `json:"amount"`
		TermLaps int `json:"term_laps"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || pid == "" || req.Amount <= 0 {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.seq++
	cd := protocol.CD{
		ID:         fmt.Sprintf("cd-%d", s.seq),
		PlayerID:   pid,
		Principal:  req.Amount,
		Rate:       s.rates.CDRate,
		TermLaps:   req.TermLaps,
		MaturesLap: s.state.Lap + req.TermLaps,
		Value:      req.Amount,
	}
	pf := s.portfolio(pid)
	pf.CDs = append(pf.CDs, cd)
	s.credit(pid, -req.Amount)
	s.mu.Unlock()

	writeJSON(w, cd)
}

func (s *Server) handleRepay(w http.ResponseWriter, r *http.Request) {
	pid := r.Header.Get("X-Player-ID")
	var req struct {
		LoanID string `json:"loan_id"`
		Amount int    `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || pid == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	pf := s.portfolio(pid)
	for i := range pf.Loans {
		if pf.Loans[i].ID == req.LoanID {
			pf.Loans[i].Balance -= req.Amount
			if pf.Loans[i].Balance < 0 {
				pf.Loans[i].Balance = 0
			}
			s.credit(pid, -req.Amount)
			writeJSON(w, pf.Loans[i])
			return
		}
	}
	http.Error(w, "loan not found", http.StatusNotFound)
}

func (s *Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	pid := r.Header.Get("X-Player-ID")
	var req struct {
		CDID string `json:"cd_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || pid == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	pf := s.portfolio(pid)
	for i, cd := range pf.CDs {
		if cd.ID == req.CDID {
			pf.CDs = append(pf.CDs[:i], pf.CDs[i+1:]...)
			s.credit(pid, cd.Value)
			writeJSON(w, cd)
			return
		}
	}
	http.Error(w, "cd not found", http.StatusNotFound)
}

func (s *Server) handleTunnelStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	st := s.tunnel
	s.mu.Unlock()
	writeJSON(w, st)
}

func (s *Server) handleTunnelStart(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.tunnel = protocol.TunnelStatus{Running: true, URL: "https://pinopoly-demo.trycloudflare.com"}
	st := s.tunnel
	s.mu.Unlock()
	writeJSON(w, st)
}

func (s *Server) handleTunnelStop(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.tunnel = protocol.TunnelStatus{}
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTunnelURL(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	url := s.tunnel.URL
	s.mu.Unlock()
	writeJSON(w, map[string]string{"url": url})
}

func (s *Server) handleAdminOverview(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := protocol.AdminFinanceOverview{Rates: s.rates}
	for _, pf := range s.portfolios {
		out.Loans = append(out.Loans, pf.Loans...)
		out.CDs = append(out.CDs, pf.CDs...)
	}
	for _, p := range s.state.Players {
		out.MoneySupply += p.Balance
	}
	s.mu.Unlock()
	writeJSON(w, out)
}

func (s *Server) handleAdminRates(w http.ResponseWriter, r *http.Request) {
	var rates protocol.InterestRates
	if err := json.NewDecoder(r.Body).Decode(&rates); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.rates = rates
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAdminAdjust(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string `json:"player_id"`
		Amount   int    `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.credit(req.PlayerID, req.Amount)
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

// portfolio returns the player's portfolio, creating it if needed. Caller
// holds s.mu.
func (s *Server) portfolio(pid string) *protocol.Portfolio {
	pf, ok := s.portfolios[pid]
	if !ok {
		pf = &protocol.Portfolio{}
		s.portfolios[pid] = pf
	}
	return pf
}

// credit adjusts a player's balance. Caller holds s.mu.
func (s *Server) credit(pid string, amount int) {
	for i := range s.state.Players {
		if s.state.Players[i].ID == pid {
			s.state.Players[i].Balance += amount
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
