package domain

// Profile is everything the client remembers between runs. It is stored
// encrypted on disk; the server is the only party that ever validates any
// of these credentials.
type Profile struct {
	Username   string `json:"username,omitempty"`
	PlayerID   string `json:"player_id,omitempty"`
	PIN        string `json:"pin,omitempty"`
	Token      string `json:"token,omitempty"`
	AdminKey   string `json:"admin_key,omitempty"`
	DisplayKey string `json:"display_key,omitempty"`
	ServerURL  string `json:"server_url,omitempty"`
}

// LoggedIn reports whether a player login has been stored.
func (p Profile) LoggedIn() bool { return p.PlayerID != "" }

// IsAdmin reports whether an admin key has been stored.
func (p Profile) IsAdmin() bool { return p.AdminKey != "" }

// PlayerAuth is what the server returns for a successful player login or
// registration. Token is opaque; the client forwards it verbatim.
type PlayerAuth struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// NewLoanRequest opens a standard loan or a HELOC. Amounts are game
// dollars, terms are laps; the server computes everything else.
type NewLoanRequest struct {
	Type         string `json:"type"` // "standard" or "heloc"
	Amount       int    `json:"amount"`
	TermLaps     int    `json:"term_laps"`
	CollateralID string `json:"collateral_id,omitempty"`
}

// NewCDRequest opens a certificate of deposit.
type NewCDRequest struct {
	Amount   int `json:"amount"`
	TermLaps int `json:"term_laps"`
}
