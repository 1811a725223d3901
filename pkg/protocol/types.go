package protocol

// Player mirrors the server's player record. Balance is in game dollars,
// Position is a board index in [0,40).
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	Balance   int    `json:"balance"`
	Position  int    `json:"position"`
	InJail    bool   `json:"in_jail"`
	JailTurns int    `json:"jail_turns,omitempty"`
	IsBot     bool   `json:"is_bot"`
	Connected bool   `json:"connected"`
	TurnOrder int    `json:"turn_order"`
}

// Property mirrors the server's property record, ownership state included.
type Property struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Group          string `json:"group,omitempty"`
	Position       int    `json:"position"`
	Price          int    `json:"price"`
	Rent           int    `json:"rent"`
	MultipliedRent []int  `json:"multiplied_rent,omitempty"`
	HouseCost      int    `json:"house_cost,omitempty"`
	Houses         int    `json:"houses"`
	Mortgaged      bool   `json:"mortgaged"`
	OwnerID        string `json:"owner_id,omitempty"`
}

// Loan covers both standard loans and HELOCs; Type distinguishes them.
// Terms are measured in laps, the in-game time unit, and all amortization
// is computed server-side.
type Loan struct {
	ID            string  `json:"id"`
	PlayerID      string  `json:"player_id"`
	Type          string  `json:"type"` // "standard" or "heloc"
	Principal     int     `json:"principal"`
	Balance       int     `json:"balance"`
	Rate          float64 `json:"rate"`
	TermLaps      int     `json:"term_laps"`
	LapsRemaining int     `json:"laps_remaining"`
	CollateralID  string  `json:"collateral_id,omitempty"` // property backing a HELOC
}

// CD is a certificate of deposit. Value reflects accrual to the current lap.
type CD struct {
	ID         string  `json:"id"`
	PlayerID   string  `json:"player_id"`
	Principal  int     `json:"principal"`
	Rate       float64 `json:"rate"`
	TermLaps   int     `json:"term_laps"`
	MaturesLap int     `json:"matures_lap"`
	Value      int     `json:"value"`
	Matured    bool    `json:"matured"`
}

// InterestRates is the server's current rate sheet.
type InterestRates struct {
	BaseRate  float64 `json:"base_rate"`
	LoanRate  float64 `json:"loan_rate"`
	CDRate    float64 `json:"cd_rate"`
	HELOCRate float64 `json:"heloc_rate"`
	Lap       int     `json:"lap"`
}

// EconomicState is pushed on economic_update and embedded in game state.
type EconomicState struct {
	Phase     string  `json:"phase"` // e.g. "boom", "stable", "recession"
	BaseRate  float64 `json:"base_rate"`
	Inflation float64 `json:"inflation"`
	Lap       int     `json:"lap"`
}

// AuctionState describes the live auction, if any.
type AuctionState struct {
	PropertyID       string   `json:"property_id"`
	HighestBid       int      `json:"highest_bid"`
	HighestBidderID  string   `json:"highest_bidder_id,omitempty"`
	SecondsRemaining int      `json:"seconds_remaining"`
	Passed           []string `json:"passed,omitempty"`
	Active           bool     `json:"active"`
}

// Bot describes a server-managed bot player.
type Bot struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"` // "easy", "normal", "hard"
}

// TunnelStatus reports the Cloudflare Tunnel exposing the local server.
type TunnelStatus struct {
	Running bool   `json:"running"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}

// GameState is the authoritative snapshot the server sends on game_state and
// game_state_update. It wholly replaces any client-side mirror.
type GameState struct {
	Players     []Player       `json:"players"`
	Properties  []Property     `json:"properties"`
	CurrentTurn string         `json:"current_turn"` // player id
	Lap         int            `json:"lap"`
	Started     bool           `json:"started"`
	Economy     *EconomicState `json:"economy,omitempty"`
	Auction     *AuctionState  `json:"auction,omitempty"`
}

// Portfolio is the response shape of the finance listing endpoint: every
// instrument the authenticated player holds. HELOCs appear among Loans with
// Type "heloc".
type Portfolio struct {
	Loans []Loan `json:"loans"`
	CDs   []CD   `json:"cds"`
}

// AdminFinanceOverview is the admin-only view of the bank: every open
// instrument plus the current rate sheet.
type AdminFinanceOverview struct {
	Rates       InterestRates `json:"rates"`
	Loans       []Loan        `json:"loans"`
	CDs         []CD          `json:"cds"`
	MoneySupply int           `json:"money_supply"`
}

// Card is the face of a drawn chance/community card. Its effect has already
// been applied server-side by the time card_drawn arrives.
type Card struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Action string `json:"action,omitempty"`
	Amount int    `json:"amount,omitempty"`
}
