package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pinopoly/internal/ui"
)

func playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Join the game and open the live board",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := requirePlayer()
			if err != nil {
				return err
			}

			sess, conn, err := wire.Game.Join(cmd.Context(), profile)
			if err != nil {
				return err
			}
			defer conn.Close()

			model := ui.NewBoardModel(sess, false)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}
