package app

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pinopoly/internal/api"
	"pinopoly/internal/domain"
	adminsvc "pinopoly/internal/services/admin"
	financesvc "pinopoly/internal/services/finance"
	gamesvc "pinopoly/internal/services/game"
	remotesvc "pinopoly/internal/services/remote"
	"pinopoly/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Creds      domain.CredentialStore
	BoardCache *store.BoardCache
	API        *api.Client
	Finance    *financesvc.Service
	Remote     *remotesvc.Service
	Game       *gamesvc.Service
	Log        *zap.Logger

	SocketURL string
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	apiClient := api.New(cfg.ServerURL, httpClient, log)

	return &Wire{
		Creds:      store.NewProfileStore(cfg.Home),
		BoardCache: store.NewBoardCache(cfg.Home),
		API:        apiClient,
		Finance:    financesvc.New(apiClient),
		Remote:     remotesvc.New(apiClient),
		Game:       gamesvc.New(cfg.SocketURL, log),
		Log:        log,
		SocketURL:  cfg.SocketURL,
	}, nil
}

// Admin builds an admin service over the wired API client. conn may be nil
// for REST-only use.
func (w *Wire) Admin(conn domain.EventConn) *adminsvc.Service {
	return adminsvc.New(w.API, conn)
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	switch level {
	case "", "info":
		lvl = zapcore.InfoLevel
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
