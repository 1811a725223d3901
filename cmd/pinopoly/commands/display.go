package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pinopoly/internal/ui"
)

func displayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "display",
		Short: "Shared-screen kiosk mode",
	}
	cmd.AddCommand(displayInitCmd(), displayBoardCmd())
	return cmd
}

func displayInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <display-key>",
		Short: "Verify and store the display key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if err := wire.API.DisplayInit(cmd.Context(), args[0]); err != nil {
				return err
			}
			p, _, err := wire.Creds.LoadProfile(passphrase)
			if err != nil {
				return err
			}
			p.DisplayKey = args[0]
			if err := wire.Creds.SaveProfile(passphrase, p); err != nil {
				return err
			}
			fmt.Println("Display key stored.")
			return nil
		},
	}
}

func displayBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show the read-only live board",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile()
			if err != nil {
				return err
			}
			if profile.DisplayKey == "" {
				return fmt.Errorf("no display key stored; run display init first")
			}

			sess, conn, err := wire.Game.Join(cmd.Context(), profile)
			if err != nil {
				return err
			}
			defer conn.Close()

			model := ui.NewBoardModel(sess, true)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}
