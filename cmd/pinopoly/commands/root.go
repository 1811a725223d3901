package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"pinopoly/internal/app"
	"pinopoly/internal/domain"
)

var (
	home       string
	passphrase string
	serverURL  string
	wire       *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "pinopoly",
		Short: "Terminal client for the Pi-nopoly game server",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".pinopoly")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(home)
			if err != nil {
				return err
			}
			if serverURL != "" {
				cfg.ServerURL = serverURL
				cfg.SocketURL = app.DeriveSocketURL(serverURL)
			}

			wire, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.pinopoly)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting stored credentials")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "game server base URL (e.g. http://127.0.0.1:5000)")

	root.AddCommand(
		loginCmd(), registerCmd(), logoutCmd(), whoamiCmd(),
		playCmd(), boardCmd(),
		financeCmd(), adminCmd(), remoteCmd(), displayCmd(),
	)
	return root.Execute()
}

// loadProfile decrypts the stored profile; every authenticated command
// goes through here.
func loadProfile() (domain.Profile, error) {
	if passphrase == "" {
		return domain.Profile{}, fmt.Errorf("passphrase required (-p)")
	}
	p, found, err := wire.Creds.LoadProfile(passphrase)
	if err != nil {
		return domain.Profile{}, err
	}
	if !found {
		return domain.Profile{}, fmt.Errorf("no stored profile; run login or register first")
	}
	return p, nil
}

// requirePlayer loads the profile and installs its credentials on the
// API client.
func requirePlayer() (domain.Profile, error) {
	p, err := loadProfile()
	if err != nil {
		return domain.Profile{}, err
	}
	if !p.LoggedIn() {
		return domain.Profile{}, fmt.Errorf("not logged in as a player; run login first")
	}
	wire.API.UseProfile(p)
	return p, nil
}

func requireAdmin() (domain.Profile, error) {
	p, err := loadProfile()
	if err != nil {
		return domain.Profile{}, err
	}
	if !p.IsAdmin() {
		return domain.Profile{}, fmt.Errorf("no admin key stored; run admin login first")
	}
	wire.API.UseProfile(p)
	return p, nil
}
