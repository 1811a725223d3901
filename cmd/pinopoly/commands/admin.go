package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	adminsvc "pinopoly/internal/services/admin"
	"pinopoly/internal/socket"
	"pinopoly/internal/ui"
	"pinopoly/pkg/protocol"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Game-master controls (bots, rates, lifecycle)",
	}
	cmd.AddCommand(
		adminLoginCmd(), adminStartCmd(), adminResetCmd(), adminRemovePlayerCmd(),
		adminBotCmd(), adminFinanceCmd(),
	)
	return cmd
}

// withAdminConn dials the realtime channel with the stored admin key,
// runs fn against a socket-backed admin service, and closes the
// connection again. Game lifecycle and bot commands are socket events,
// not REST calls.
func withAdminConn(cmd *cobra.Command, fn func(*adminsvc.Service) error) error {
	profile, err := requireAdmin()
	if err != nil {
		return err
	}
	conn, err := socket.Dial(cmd.Context(), socket.Config{
		URL:     wire.SocketURL,
		Profile: profile,
		Logger:  wire.Log,
	})
	if err != nil {
		return err
	}
	defer conn.Close()
	return fn(wire.Admin(conn))
}

func adminLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <admin-key>",
		Short: "Verify and store the admin key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if err := wire.API.AdminLogin(cmd.Context(), args[0]); err != nil {
				return err
			}
			p, _, err := wire.Creds.LoadProfile(passphrase)
			if err != nil {
				return err
			}
			p.AdminKey = args[0]
			if err := wire.Creds.SaveProfile(passphrase, p); err != nil {
				return err
			}
			fmt.Println("Admin key stored.")
			return nil
		},
	}
}

func adminStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdminConn(cmd, func(svc *adminsvc.Service) error {
				return svc.StartGame()
			})
		},
	}
}

func adminResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the game to its initial state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdminConn(cmd, func(svc *adminsvc.Service) error {
				return svc.ResetGame()
			})
		},
	}
}

func adminRemovePlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-player <player-id>",
		Short: "Remove a player from the game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdminConn(cmd, func(svc *adminsvc.Service) error {
				return svc.RemovePlayer(args[0])
			})
		},
	}
}

func adminBotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Manage bot players",
	}
	cmd.AddCommand(adminBotAddCmd(), adminBotRemoveCmd(), adminBotDifficultyCmd())
	return cmd
}

func adminBotAddCmd() *cobra.Command {
	var (
		name       string
		difficulty string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a bot to the game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdminConn(cmd, func(svc *adminsvc.Service) error {
				return svc.AddBot(name, difficulty)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "bot display name")
	cmd.Flags().StringVar(&difficulty, "difficulty", "normal", "easy, normal or hard")
	return cmd
}

func adminBotRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <bot-id>",
		Short: "Remove a bot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdminConn(cmd, func(svc *adminsvc.Service) error {
				return svc.RemoveBot(args[0])
			})
		},
	}
}

func adminBotDifficultyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "difficulty <bot-id> <easy|normal|hard>",
		Short: "Change a bot's difficulty",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdminConn(cmd, func(svc *adminsvc.Service) error {
				return svc.SetBotDifficulty(args[0], args[1])
			})
		},
	}
}

func adminFinanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Economy overview and adjustments",
	}
	cmd.AddCommand(adminFinanceOverviewCmd(), adminFinanceRatesCmd(), adminFinanceAdjustCmd())
	return cmd
}

func adminFinanceOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show all loans, CDs and the money supply",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(); err != nil {
				return err
			}
			ov, err := wire.Admin(nil).FinanceOverview(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(ui.RenderFinanceOverview(ov))
			return nil
		},
	}
}

func adminFinanceRatesCmd() *cobra.Command {
	var base, loan, cd, heloc float64
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Set the interest rate sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(); err != nil {
				return err
			}
			rates := protocol.InterestRates{BaseRate: base, LoanRate: loan, CDRate: cd, HELOCRate: heloc}
			if err := wire.Admin(nil).SetRates(cmd.Context(), rates); err != nil {
				return err
			}
			fmt.Println("Rates updated.")
			return nil
		},
	}
	cmd.Flags().Float64Var(&base, "base", 0, "base rate, e.g. 0.05")
	cmd.Flags().Float64Var(&loan, "loan", 0, "standard loan rate")
	cmd.Flags().Float64Var(&cd, "cd", 0, "CD rate")
	cmd.Flags().Float64Var(&heloc, "heloc", 0, "HELOC rate")
	return cmd
}

func adminFinanceAdjustCmd() *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   "adjust <player-id> <amount>",
		Short: "Credit or debit a player's balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(); err != nil {
				return err
			}
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("amount %q is not a number", args[1])
			}
			if err := wire.Admin(nil).AdjustBalance(cmd.Context(), args[0], amount, reason); err != nil {
				return err
			}
			fmt.Printf("Adjusted %s by $%d.\n", args[0], amount)
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "audit note for the adjustment")
	return cmd
}
