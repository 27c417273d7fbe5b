package game

import apperrors "github.com/mrsnaggls2/binokel/internal/platform/errors"

var (
	// ErrEmptyPlayerName indicates a blank player name at game creation.
	ErrEmptyPlayerName = apperrors.New(apperrors.CodeGameEmptyPlayerName, "all four player names are required")
	// ErrInvalidDealer indicates a dealer index outside 1..4.
	ErrInvalidDealer = apperrors.New(apperrors.CodeGameInvalidDealer, "dealer must be a player index from 1 to 4")
	// ErrInvalidBidTeam indicates a bid team other than team 1 or team 2.
	ErrInvalidBidTeam = apperrors.New(apperrors.CodeRoundInvalidBidTeam, "bid team must be team 1 or team 2")
	// ErrNegativePoints indicates negative meld or play points.
	ErrNegativePoints = apperrors.New(apperrors.CodeRoundNegativePoints, "meld and play points must not be negative")
)
