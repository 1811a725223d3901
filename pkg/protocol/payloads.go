package protocol

// Client -> Server payloads.

// PlayerRef identifies the acting player; used by roll_dice, end_turn,
// pass_auction, leave_game and remove_player.
type PlayerRef struct {
	PlayerID string `json:"player_id"`
}

// PlaceBid is the payload for place_bid.
type PlaceBid struct {
	PlayerID   string `json:"player_id"`
	PropertyID string `json:"property_id"`
	Amount     int    `json:"amount"`
}

// DrawCard is the payload for draw_card.
type DrawCard struct {
	PlayerID string `json:"player_id"`
	Deck     string `json:"deck"` // "chance" or "community"
}

// AddBot is the payload for add_bot / create_bot.
type AddBot struct {
	Name       string `json:"name,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// BotRef identifies a bot; used by remove_bot.
type BotRef struct {
	BotID string `json:"bot_id"`
}

// SetBotDifficulty is the payload for set_bot_difficulty.
type SetBotDifficulty struct {
	BotID      string `json:"bot_id"`
	Difficulty string `json:"difficulty"`
}

// Server -> Client payloads.

// DiceRolled is the payload for dice_rolled.
type DiceRolled struct {
	PlayerID string `json:"player_id"`
	Die1     int    `json:"die1"`
	Die2     int    `json:"die2"`
	Total    int    `json:"total"`
	Doubles  bool   `json:"doubles"`
}

// PlayerMoved is the payload for player_moved. From/To are board positions;
// PassedGo reports lap credit already applied server-side.
type PlayerMoved struct {
	PlayerID string `json:"player_id"`
	From     int    `json:"from"`
	To       int    `json:"to"`
	PassedGo bool   `json:"passed_go"`
}

// PlayerJailed is the payload for player_jailed.
type PlayerJailed struct {
	PlayerID string `json:"player_id"`
	Reason   string `json:"reason,omitempty"`
}

// TurnChanged is the payload for turn_changed.
type TurnChanged struct {
	PlayerID string `json:"player_id"`
	Lap      int    `json:"lap"`
}

// PropertyUpdate carries the full updated property record.
type PropertyUpdate struct {
	Property Property `json:"property"`
}

// AuctionEnded is the payload for auction_ended. WinnerID is empty when the
// auction closed with no bids.
type AuctionEnded struct {
	PropertyID string `json:"property_id"`
	WinnerID   string `json:"winner_id,omitempty"`
	Amount     int    `json:"amount,omitempty"`
}

// AuctionPass is the payload for auction_pass.
type AuctionPass struct {
	PlayerID   string `json:"player_id"`
	PropertyID string `json:"property_id"`
}

// CardDrawn is the payload for card_drawn.
type CardDrawn struct {
	PlayerID string `json:"player_id"`
	Deck     string `json:"deck"`
	Card     Card   `json:"card"`
}

// BotNotice is the payload for bot_added, bot_removed and bot_updated.
type BotNotice struct {
	Bot Bot `json:"bot"`
}

// Presence is the payload for player_connected, player_disconnected,
// player_reconnected and player_timed_out.
type Presence struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name,omitempty"`
}

// ErrorNotice is the payload for auction_error and bot_error.
type ErrorNotice struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}
