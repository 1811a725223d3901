package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pinopoly/internal/crypto"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored profile without revealing secrets",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile()
			if err != nil {
				return err
			}
			if !p.LoggedIn() {
				fmt.Println("Not logged in.")
			} else {
				fmt.Printf("Player:   %s (%s)\n", p.Username, p.PlayerID)
				fmt.Printf("Token:    %s\n", crypto.Fingerprint([]byte(p.Token)))
			}
			if p.IsAdmin() {
				fmt.Printf("Admin:    %s\n", crypto.Fingerprint([]byte(p.AdminKey)))
			}
			if p.DisplayKey != "" {
				fmt.Printf("Display:  %s\n", crypto.Fingerprint([]byte(p.DisplayKey)))
			}
			return nil
		},
	}
}
