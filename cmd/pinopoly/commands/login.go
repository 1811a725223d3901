package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pinopoly/internal/domain"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <pin>",
		Short: "Authenticate with the server and store credentials",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			auth, err := wire.API.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if err := saveAuth(auth, args[1]); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (player %s).\n", auth.Username, auth.PlayerID)
			return nil
		},
	}
}

// saveAuth merges a fresh player login into the stored profile, keeping
// any admin or display keys already present.
func saveAuth(auth domain.PlayerAuth, pin string) error {
	p, _, err := wire.Creds.LoadProfile(passphrase)
	if err != nil {
		return err
	}
	p.Username = auth.Username
	p.PlayerID = auth.PlayerID
	p.Token = auth.Token
	p.PIN = pin
	return wire.Creds.SaveProfile(passphrase, p)
}
