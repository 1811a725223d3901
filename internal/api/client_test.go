package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinopoly/internal/api"
	"pinopoly/internal/domain"
	"pinopoly/pkg/protocol"
)

func TestPortfolio_ForwardsCredentials(t *testing.T) {
	var gotPlayer, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/finance/loans", r.URL.Path)
		gotPlayer = r.Header.Get("X-Player-ID")
		gotToken = r.Header.Get("X-Player-Token")
		_ = json.NewEncoder(w).Encode(protocol.Portfolio{
			Loans: []protocol.Loan{{ID: "l1", PlayerID: "p1", Type: "standard", Balance: 500}},
			CDs:   []protocol.CD{{ID: "c1", PlayerID: "p1", Principal: 200}},
		})
	}))
	defer srv.Close()

	c := api.New(srv.URL, srv.Client(), nil)
	c.UseProfile(domain.Profile{PlayerID: "p1", Token: "tok-1"})

	got, err := c.Portfolio(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "p1", gotPlayer)
	assert.Equal(t, "tok-1", gotToken)
	assert.Len(t, got.Loans, 1)
	assert.Equal(t, 500, got.Loans[0].Balance)
	assert.Len(t, got.CDs, 1)
}

func TestNewLoan_PostsRequestBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/finance/loan/new", r.URL.Path)

		var req domain.NewLoanRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "heloc", req.Type)
		assert.Equal(t, "prop-12", req.CollateralID)

		_ = json.NewEncoder(w).Encode(protocol.Loan{
			ID: "l2", Type: req.Type, Principal: req.Amount, Balance: req.Amount, TermLaps: req.TermLaps,
		})
	}))
	defer srv.Close()

	c := api.New(srv.URL, srv.Client(), nil)
	loan, err := c.NewLoan(context.Background(), domain.NewLoanRequest{
		Type: "heloc", Amount: 300, TermLaps: 5, CollateralID: "prop-12",
	})
	require.NoError(t, err)
	assert.Equal(t, 300, loan.Principal)
	assert.Equal(t, 5, loan.TermLaps)
}

func TestNon2xx_IsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "insufficient equity", http.StatusConflict)
	}))
	defer srv.Close()

	c := api.New(srv.URL, srv.Client(), nil)
	_, err := c.NewCD(context.Background(), domain.NewCDRequest{Amount: 100, TermLaps: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/api/finance/cd/new")
	assert.Contains(t, err.Error(), "409")
}

func TestAdminCalls_UseAdminKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Admin-Key") != "k-admin" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		_ = json.NewEncoder(w).Encode(protocol.AdminFinanceOverview{MoneySupply: 15140})
	}))
	defer srv.Close()

	c := api.New(srv.URL, srv.Client(), nil)

	// Without the key the server rejects us.
	_, err := c.FinanceOverview(context.Background())
	require.Error(t, err)

	c.UseProfile(domain.Profile{AdminKey: "k-admin"})
	got, err := c.FinanceOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 15140, got.MoneySupply)
}

func TestPlayerProperties_EscapesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/player/p%201/properties", r.URL.EscapedPath())
		_ = json.NewEncoder(w).Encode([]protocol.Property{{ID: "go", Position: 0}})
	}))
	defer srv.Close()

	c := api.New(srv.URL, srv.Client(), nil)
	props, err := c.PlayerProperties(context.Background(), "p 1")
	require.NoError(t, err)
	assert.Len(t, props, 1)
}
