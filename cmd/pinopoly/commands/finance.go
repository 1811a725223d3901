package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pinopoly/internal/ui"
	"pinopoly/pkg/protocol"
)

func financeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Loans, CDs and interest rates",
	}
	cmd.AddCommand(
		financeLoansCmd(), financeRatesCmd(),
		financeLoanNewCmd(), financeLoanRepayCmd(),
		financeCDNewCmd(), financeCDWithdrawCmd(),
	)
	return cmd
}

func financeLoansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "loans",
		Short: "Show your loan and CD portfolio",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requirePlayer(); err != nil {
				return err
			}
			pf, err := wire.Finance.Portfolio(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(ui.RenderPortfolio(pf))
			return nil
		},
	}
}

func financeRatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Show current interest rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			rates, err := wire.Finance.Rates(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(ui.RenderRates(rates))
			return nil
		},
	}
}

func financeLoanNewCmd() *cobra.Command {
	var (
		amount     int
		termLaps   int
		heloc      bool
		collateral string
	)
	cmd := &cobra.Command{
		Use:   "loan-new",
		Short: "Open a loan (standard, or HELOC against a property)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requirePlayer(); err != nil {
				return err
			}
			open := func() (protocol.Loan, error) {
				if heloc {
					return wire.Finance.OpenHELOC(cmd.Context(), amount, termLaps, collateral)
				}
				return wire.Finance.OpenLoan(cmd.Context(), amount, termLaps)
			}
			loan, err := open()
			if err != nil {
				return err
			}
			fmt.Printf("Loan %s opened: $%d over %d laps at %.2f%%.\n",
				loan.ID, loan.Principal, loan.TermLaps, loan.Rate*100)
			return nil
		},
	}
	cmd.Flags().IntVar(&amount, "amount", 0, "principal in game dollars")
	cmd.Flags().IntVar(&termLaps, "term", 0, "term in laps")
	cmd.Flags().BoolVar(&heloc, "heloc", false, "open a HELOC instead of a standard loan")
	cmd.Flags().StringVar(&collateral, "collateral", "", "property ID backing a HELOC")
	return cmd
}

func financeLoanRepayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "loan-repay <loan-id> <amount>",
		Short: "Pay down a loan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requirePlayer(); err != nil {
				return err
			}
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("amount %q is not a number", args[1])
			}
			loan, err := wire.Finance.Repay(cmd.Context(), args[0], amount)
			if err != nil {
				return err
			}
			fmt.Printf("Loan %s balance is now $%d.\n", loan.ID, loan.Balance)
			return nil
		},
	}
}

func financeCDNewCmd() *cobra.Command {
	var (
		amount   int
		termLaps int
	)
	cmd := &cobra.Command{
		Use:   "cd-new",
		Short: "Open a certificate of deposit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requirePlayer(); err != nil {
				return err
			}
			cd, err := wire.Finance.OpenCD(cmd.Context(), amount, termLaps)
			if err != nil {
				return err
			}
			fmt.Printf("CD %s opened: $%d at %.2f%%, matures lap %d.\n",
				cd.ID, cd.Principal, cd.Rate*100, cd.MaturesLap)
			return nil
		},
	}
	cmd.Flags().IntVar(&amount, "amount", 0, "principal in game dollars")
	cmd.Flags().IntVar(&termLaps, "term", 0, "term in laps")
	return cmd
}

func financeCDWithdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cd-withdraw <cd-id>",
		Short: "Withdraw a CD (early withdrawal forfeits interest)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requirePlayer(); err != nil {
				return err
			}
			cd, err := wire.Finance.Withdraw(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("CD %s withdrawn for $%d.\n", cd.ID, cd.Value)
			return nil
		},
	}
}
