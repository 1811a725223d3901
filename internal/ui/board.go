package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pinopoly/internal/session"
	"pinopoly/pkg/protocol"
)

// ringSize is the number of squares on the board ring; edge is the
// side length of the rendered square, corners included.
const (
	ringSize = 40
	edge     = 11
)

// minBidStep is added on top of the highest bid when the bid key is
// pressed. The server rejects bids it does not like.
const minBidStep = 10

// GameSession is the slice of session.Session the board page needs.
// Taking an interface keeps the page testable without a live socket.
type GameSession interface {
	View() session.View
	Updates() <-chan struct{}
	PlayerID() string
	RollDice() error
	EndTurn() error
	PlaceBid(propertyID string, amount int) error
	PassAuction() error
	DrawCard(deck string) error
	Leave() error
}

var _ GameSession = (*session.Session)(nil)

type updateMsg struct{}

// BoardModel is the live board page. It mirrors the session view and
// repaints whenever the session signals an update.
type BoardModel struct {
	sess     GameSession
	readOnly bool

	view   session.View
	feed   viewport.Model
	styles Styles
	width  int
	err    error
	done   bool
}

// NewBoardModel builds the board page. readOnly suppresses every
// action key; the display kiosk runs in that mode.
func NewBoardModel(sess GameSession, readOnly bool) BoardModel {
	view := sess.View()
	fv := viewport.New(44, 8)
	fv.SetContent(strings.Join(view.Feed, "\n"))
	return BoardModel{
		sess:     sess,
		readOnly: readOnly,
		view:     view,
		feed:     fv,
		styles:   DefaultStyles(),
	}
}

func (m BoardModel) Init() tea.Cmd {
	return waitForUpdate(m.sess.Updates())
}

// waitForUpdate bridges the session's coalesced update channel into
// the Bubble Tea message loop, one command per repaint.
func waitForUpdate(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return tea.Quit()
		}
		return updateMsg{}
	}
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case updateMsg:
		m.view = m.sess.View()
		m.feed.SetContent(strings.Join(m.view.Feed, "\n"))
		m.feed.GotoBottom()
		return m, waitForUpdate(m.sess.Updates())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if !m.readOnly {
				m.err = m.sess.Leave()
			}
			m.done = true
			return m, tea.Quit
		}
		if m.readOnly {
			return m, nil
		}
		switch msg.String() {
		case "r":
			m.err = m.sess.RollDice()
		case "e":
			m.err = m.sess.EndTurn()
		case "b":
			if a := m.view.Auction; a != nil && a.Active {
				m.err = m.sess.PlaceBid(a.PropertyID, a.HighestBid+minBidStep)
			}
		case "p":
			if a := m.view.Auction; a != nil && a.Active {
				m.err = m.sess.PassAuction()
			}
		case "d":
			m.err = m.sess.DrawCard("chance")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.feed, cmd = m.feed.Update(msg)
	return m, cmd
}

func (m BoardModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.banner())
	b.WriteString("\n")
	b.WriteString(m.ring())
	b.WriteString("\n")

	panels := []string{m.playersPanel(), m.feedPanel()}
	if a := m.view.Auction; a != nil && a.Active {
		panels = append(panels, m.auctionPanel(*a))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Err.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.help())
	return b.String()
}

func (m BoardModel) banner() string {
	turn := "waiting for players"
	if p, ok := m.view.PlayerByID(m.view.CurrentTurn); ok {
		turn = p.Name + " to play"
		if p.ID == m.sess.PlayerID() {
			turn = "your turn"
		}
	}
	line := fmt.Sprintf("pi-nopoly · lap %d · %s", m.view.Lap, turn)
	if e := m.view.Economy; e != nil {
		line += fmt.Sprintf(" · %s, base %.1f%%", e.Phase, e.BaseRate*100)
	}
	return m.styles.Banner.Render(line)
}

// ring paints the 40 squares as a hollow 11x11 frame. A square shows
// the initials of the players on it, otherwise its board position.
func (m BoardModel) ring() string {
	var grid [edge][edge]string
	for pos := 0; pos < ringSize; pos++ {
		r, c := ringCoords(pos)
		grid[r][c] = m.squareCell(pos)
	}
	blank := strings.Repeat(" ", 4)
	rows := make([]string, edge)
	for r := 0; r < edge; r++ {
		cells := make([]string, edge)
		for c := 0; c < edge; c++ {
			if grid[r][c] == "" {
				cells[c] = blank
			} else {
				cells[c] = grid[r][c]
			}
		}
		rows[r] = strings.Join(cells, "")
	}
	return strings.Join(rows, "\n")
}

// ringCoords maps a board position to its cell in the frame, walking
// clockwise from GO in the bottom-right corner.
func ringCoords(pos int) (row, col int) {
	switch {
	case pos <= 10:
		return edge - 1, edge - 1 - pos
	case pos <= 20:
		return edge - 1 - (pos - 10), 0
	case pos <= 30:
		return 0, pos - 20
	default:
		return pos - 30, edge - 1
	}
}

func (m BoardModel) squareCell(pos int) string {
	var initials string
	here := false
	for _, p := range m.view.Players {
		if p.Position == pos {
			initials += initial(p.Name)
			if p.ID == m.sess.PlayerID() {
				here = true
			}
		}
	}
	if initials != "" {
		if rs := []rune(initials); len(rs) > 3 {
			initials = string(rs[:3])
		}
		if here {
			return m.styles.SquareHere.Render(initials)
		}
		return m.styles.Square.Render(initials)
	}
	label := fmt.Sprintf("%02d", pos)
	if prop, ok := m.view.PropertyAt(pos); ok && prop.OwnerID == m.sess.PlayerID() {
		return m.styles.SquareOwn.Render(label)
	}
	return m.styles.Square.Render(label)
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return "?"
	}
	return strings.ToUpper(string(r))
}

func (m BoardModel) playersPanel() string {
	var b strings.Builder
	b.WriteString(m.styles.PanelTitle.Render("players"))
	b.WriteString("\n")
	for _, p := range m.view.Players {
		marker := " "
		if p.ID == m.view.CurrentTurn {
			marker = ">"
		}
		status := ""
		if p.InJail {
			status = " [jail]"
		}
		if !p.IsBot && !p.Connected {
			status += " [away]"
		}
		fmt.Fprintf(&b, "%s %-12s %s%s\n",
			marker, p.Name, m.styles.Money.Render(fmt.Sprintf("$%d", p.Balance)), status)
	}
	return m.styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m BoardModel) feedPanel() string {
	content := m.styles.PanelTitle.Render("events") + "\n" +
		m.styles.Feed.Render(m.feed.View())
	return m.styles.Panel.Render(content)
}

func (m BoardModel) auctionPanel(a protocol.AuctionState) string {
	name := a.PropertyID
	for _, p := range m.view.Properties {
		if p.ID == a.PropertyID {
			name = p.Name
		}
	}
	bidder := a.HighestBidderID
	if p, ok := m.view.PlayerByID(a.HighestBidderID); ok {
		bidder = p.Name
	}
	body := fmt.Sprintf("%s\n%s\nhigh bid $%d (%s)\n%ds left",
		m.styles.PanelTitle.Render("auction"), name, a.HighestBid, bidder, a.SecondsRemaining)
	return m.styles.Auction.Render(body)
}

func (m BoardModel) help() string {
	if m.readOnly {
		return m.styles.Help.Render("q quit")
	}
	return m.styles.Help.Render("r roll · e end turn · b bid · p pass · d draw · q quit")
}
