package ui

import (
	"fmt"
	"sort"
	"strings"

	"pinopoly/pkg/protocol"
)

// Static renderers for the one-shot commands. They return a finished
// string; the command decides where it goes.

// RenderRates prints the server's rate sheet.
func RenderRates(r protocol.InterestRates) string {
	st := DefaultStyles()
	var b strings.Builder
	b.WriteString(st.PanelTitle.Render(fmt.Sprintf("interest rates (lap %d)", r.Lap)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  base  %5.2f%%\n", r.BaseRate*100)
	fmt.Fprintf(&b, "  loan  %5.2f%%\n", r.LoanRate*100)
	fmt.Fprintf(&b, "  heloc %5.2f%%\n", r.HELOCRate*100)
	fmt.Fprintf(&b, "  cd    %5.2f%%\n", r.CDRate*100)
	return b.String()
}

// RenderPortfolio prints a player's loans and CDs.
func RenderPortfolio(pf protocol.Portfolio) string {
	st := DefaultStyles()
	var b strings.Builder

	b.WriteString(st.PanelTitle.Render("loans"))
	b.WriteString("\n")
	if len(pf.Loans) == 0 {
		b.WriteString("  none\n")
	}
	for _, l := range pf.Loans {
		collateral := ""
		if l.CollateralID != "" {
			collateral = " against " + l.CollateralID
		}
		fmt.Fprintf(&b, "  %-10s %-8s %s of %s at %.2f%%, %d laps left%s\n",
			l.ID, l.Type,
			st.Money.Render(fmt.Sprintf("$%d", l.Balance)),
			fmt.Sprintf("$%d", l.Principal),
			l.Rate*100, l.LapsRemaining, collateral)
	}

	b.WriteString(st.PanelTitle.Render("certificates of deposit"))
	b.WriteString("\n")
	if len(pf.CDs) == 0 {
		b.WriteString("  none\n")
	}
	for _, cd := range pf.CDs {
		status := fmt.Sprintf("matures lap %d", cd.MaturesLap)
		if cd.Matured {
			status = "matured"
		}
		fmt.Fprintf(&b, "  %-10s %s at %.2f%%, worth %s, %s\n",
			cd.ID,
			st.Money.Render(fmt.Sprintf("$%d", cd.Principal)),
			cd.Rate*100,
			st.Money.Render(fmt.Sprintf("$%d", cd.Value)),
			status)
	}
	return b.String()
}

// RenderBoardSnapshot prints a one-shot view of players and owned
// properties, sorted by board position.
func RenderBoardSnapshot(players []protocol.Player, properties []protocol.Property) string {
	st := DefaultStyles()
	var b strings.Builder

	b.WriteString(st.PanelTitle.Render("players"))
	b.WriteString("\n")
	for _, p := range players {
		tag := ""
		if p.IsBot {
			tag = " (bot)"
		}
		fmt.Fprintf(&b, "  %-12s %s at %02d%s\n",
			p.Name, st.Money.Render(fmt.Sprintf("$%d", p.Balance)), p.Position, tag)
	}

	owned := make([]protocol.Property, 0, len(properties))
	for _, pr := range properties {
		if pr.OwnerID != "" {
			owned = append(owned, pr)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].Position < owned[j].Position })

	b.WriteString(st.PanelTitle.Render("owned properties"))
	b.WriteString("\n")
	if len(owned) == 0 {
		b.WriteString("  none\n")
	}
	for _, pr := range owned {
		flags := ""
		if pr.Houses > 0 {
			flags = fmt.Sprintf(" %d houses", pr.Houses)
		}
		if pr.Mortgaged {
			flags += " mortgaged"
		}
		fmt.Fprintf(&b, "  %02d %-22s owner %s rent %s%s\n",
			pr.Position, pr.Name, pr.OwnerID,
			st.Money.Render(fmt.Sprintf("$%d", pr.Rent)), flags)
	}
	return b.String()
}

// RenderFinanceOverview prints the admin-side economy summary.
func RenderFinanceOverview(ov protocol.AdminFinanceOverview) string {
	st := DefaultStyles()
	var b strings.Builder
	b.WriteString(RenderRates(ov.Rates))
	fmt.Fprintf(&b, "%s\n  loans outstanding %d, CDs open %d, money supply %s\n",
		st.PanelTitle.Render("totals"),
		len(ov.Loans), len(ov.CDs),
		st.Money.Render(fmt.Sprintf("$%d", ov.MoneySupply)))
	return b.String()
}
