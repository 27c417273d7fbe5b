package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeGameEmptyPlayerName = "GAME_EMPTY_PLAYER_NAME"
	CodeGameInvalidDealer   = "GAME_INVALID_DEALER"
	CodeGameFinished        = "GAME_FINISHED"
	CodeGameOutcomeConflict = "GAME_OUTCOME_CONFLICT"
	CodeRoundInvalidMode    = "ROUND_INVALID_MODE"
	CodeRoundInvalidBid     = "ROUND_INVALID_BID"
	CodeRoundInvalidBidTeam = "ROUND_INVALID_BID_TEAM"
	CodeRoundNegativePoints = "ROUND_NEGATIVE_POINTS"
	CodeRoundNotCurrent     = "ROUND_NOT_CURRENT"
	CodeRoundAlreadyExists  = "ROUND_ALREADY_EXISTS"
	CodeNotFound            = "NOT_FOUND"
	CodeBadRequest          = "BAD_REQUEST"
)

var messagesEnUS = map[Code]string{
	CodeGameEmptyPlayerName: "All four player names are required.",
	CodeGameInvalidDealer:   "The dealer must be a player from 1 to 4.",
	CodeGameFinished:        "This game is already finished.",
	CodeGameOutcomeConflict: "The game result was already recorded with different points.",
	CodeRoundInvalidMode:    "Unknown scoring mode {{.mode}}.",
	CodeRoundInvalidBid:     "The bid must be at least {{.min}} and a multiple of {{.step}}.",
	CodeRoundInvalidBidTeam: "The bidding team must be team 1 or team 2.",
	CodeRoundNegativePoints: "Meld and play points cannot be negative.",
	CodeRoundNotCurrent:     "Only the current round {{.current}} can be scored.",
	CodeRoundAlreadyExists:  "Round {{.number}} already exists.",
	CodeNotFound:            "The requested record was not found.",
	CodeBadRequest:          "The request could not be understood.",
}
