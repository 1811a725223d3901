package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Creds.ClearProfile(); err != nil {
				return err
			}
			fmt.Println("Profile cleared.")
			return nil
		},
	}
}
