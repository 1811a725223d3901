package app

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string `yaml:"-"`          // config directory, e.g. $HOME/.pinopoly
	ServerURL string `yaml:"server_url"` // game server base URL, e.g. http://127.0.0.1:5000
	SocketURL string `yaml:"socket_url"` // realtime endpoint; derived from ServerURL when empty
	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error

	HTTP *http.Client `yaml:"-"` // optional; defaults to http.DefaultClient
}

const defaultServerURL = "http://127.0.0.1:5000"

// LoadConfig resolves configuration for the given home dir. Precedence,
// lowest to highest: defaults, config.yaml in home, environment. Flags are
// applied by the caller on top.
func LoadConfig(home string) (Config, error) {
	cfg := Config{
		Home:      home,
		ServerURL: defaultServerURL,
		LogLevel:  "info",
	}

	if b, err := os.ReadFile(filepath.Join(home, "config.yaml")); err == nil {
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	if v := os.Getenv("PINOPOLY_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("PINOPOLY_SOCKET_URL"); v != "" {
		cfg.SocketURL = v
	}
	if v := os.Getenv("PINOPOLY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if cfg.SocketURL == "" {
		cfg.SocketURL = DeriveSocketURL(cfg.ServerURL)
	}
	return cfg, nil
}

// DeriveSocketURL maps the HTTP base to the conventional /ws endpoint.
func DeriveSocketURL(serverURL string) string {
	u, err := url.Parse(serverURL)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	return u.String()
}
