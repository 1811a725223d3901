package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <username> <pin>",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			auth, err := wire.API.Register(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if err := saveAuth(auth, args[1]); err != nil {
				return err
			}
			fmt.Printf("Registered %s (player %s).\n", auth.Username, auth.PlayerID)
			return nil
		},
	}
}
