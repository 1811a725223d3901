package protocol

// Client -> Server events.
const (
	EventRollDice         = "roll_dice"
	EventEndTurn          = "end_turn"
	EventPlaceBid         = "place_bid"
	EventPassAuction      = "pass_auction"
	EventDrawCard         = "draw_card"
	EventLeaveGame        = "leave_game"
	EventGetAllPlayers    = "get_all_players"
	EventRequestGameState = "request_game_state"
	EventAddBot           = "add_bot"
	EventCreateBot        = "create_bot" // accepted by the server as an alias of add_bot
	EventRemoveBot        = "remove_bot"
	EventSetBotDifficulty = "set_bot_difficulty"
	EventStartGame        = "start_game"
	EventResetGame        = "reset_game"
	EventRemovePlayer     = "remove_player"
)

// Server -> Client events.
const (
	EventDiceRolled         = "dice_rolled"
	EventPlayerMoved        = "player_moved"
	EventPlayerJailed       = "player_jailed"
	EventTurnChanged        = "turn_changed"
	EventGameState          = "game_state"
	EventGameStateUpdate    = "game_state_update" // same payload as game_state
	EventPropertyUpdate     = "property_update"
	EventEconomicUpdate     = "economic_update"
	EventAuctionBid         = "auction_bid"
	EventAuctionTimer       = "auction_timer"
	EventAuctionEnded       = "auction_ended"
	EventAuctionError       = "auction_error"
	EventAuctionPass        = "auction_pass"
	EventBotAdded           = "bot_added"
	EventBotRemoved         = "bot_removed"
	EventBotUpdated         = "bot_updated"
	EventBotError           = "bot_error"
	EventCardDrawn          = "card_drawn"
	EventPlayerConnected    = "player_connected"
	EventPlayerDisconnected = "player_disconnected"
	EventPlayerReconnected  = "player_reconnected"
	EventPlayerTimedOut     = "player_timed_out"
	EventPing               = "ping"
	EventPong               = "pong"
)
