package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pinopoly/internal/ui"
	"pinopoly/pkg/protocol"
)

func boardCmd() *cobra.Command {
	var mine bool
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print a one-shot board snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if mine {
				profile, err := requirePlayer()
				if err != nil {
					return err
				}
				props, err := wire.API.PlayerProperties(ctx, profile.PlayerID)
				if err != nil {
					return err
				}
				fmt.Print(ui.RenderBoardSnapshot(nil, props))
				return nil
			}

			props, err := wire.API.Properties(ctx)
			if err != nil {
				// The public board endpoints need no credentials, so a
				// failure here usually means the server is down. Fall
				// back to the last cached board.
				cached, saved, ok, cacheErr := wire.BoardCache.Load()
				if cacheErr != nil || !ok {
					return err
				}
				fmt.Printf("server unreachable, showing board cached %s\n", saved.Format("2006-01-02 15:04"))
				fmt.Print(ui.RenderBoardSnapshot(nil, cached))
				return nil
			}
			if err := wire.BoardCache.Save(props); err != nil {
				wire.Log.Warn("board cache save failed", zap.Error(err))
			}

			players, err := wire.API.Players(ctx)
			if err != nil {
				players = []protocol.Player{}
			}
			fmt.Print(ui.RenderBoardSnapshot(players, props))
			return nil
		},
	}
	cmd.Flags().BoolVar(&mine, "mine", false, "show only properties you own")
	return cmd
}
