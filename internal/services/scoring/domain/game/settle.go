package game

import (
	"strconv"

	apperrors "github.com/mrsnaggls2/binokel/internal/platform/errors"
)

const (
	// MinBid is the lowest bid a team may commit to.
	MinBid = 200
	// BidStep is the granularity of bids.
	BidStep = 10
	// WinningTotal ends the game when the bidding team's cumulative total
	// reaches it (or its negation, in the opponents' favor).
	WinningTotal = 1000
	// ThousandPoints is the score awarded for a declared instant win.
	ThousandPoints = 1000
)

// SettleInput carries a round's declared outcome and the cumulative totals
// the round starts from.
type SettleInput struct {
	Mode    Mode
	Bid     int
	BidTeam Team
	Meld1   int
	Meld2   int
	Play1   int
	Play2   int
	// PrevTotal1 and PrevTotal2 are the totals through the previous round
	// (zero for round 1).
	PrevTotal1 int
	PrevTotal2 int
}

// Settlement is the computed outcome of one round.
type Settlement struct {
	Confirmation Confirmation
	Result1      int
	Result2      int
	Total1       int
	Total2       int
	// Finished marks the end of the game; Winner and EndPoints are only
	// meaningful when it is set.
	Finished   bool
	Winner     Team
	EndPoints1 int
	EndPoints2 int
}

// Settle computes one round's results, new cumulative totals, and whether
// the game ends. It is pure: all state comes in through the input.
//
// A thousand declaration bypasses round arithmetic entirely and awards the
// full game to the bidding team; the caller is expected to discard the open
// round record instead of persisting the settlement onto it.
func Settle(input SettleInput) (Settlement, error) {
	if err := validateSettleInput(input); err != nil {
		return Settlement{}, err
	}

	if input.Mode == ModeThousand {
		end1, end2 := 0, ThousandPoints
		if input.BidTeam == Team1 {
			end1, end2 = ThousandPoints, 0
		}
		return Settlement{
			Finished:   true,
			Winner:     input.BidTeam,
			EndPoints1: end1,
			EndPoints2: end2,
		}, nil
	}

	tally1 := input.Meld1 + input.Play1
	tally2 := input.Meld2 + input.Play2

	var settled Settlement
	switch input.Mode {
	case ModeNormal:
		bidTally := tally2
		if input.BidTeam == Team1 {
			bidTally = tally1
		}
		if bidTally >= input.Bid {
			settled.Confirmation = ConfirmationMet
			settled.Result1, settled.Result2 = tally1, tally2
		} else {
			settled.Confirmation = ConfirmationRejected
			if input.BidTeam == Team1 {
				settled.Result1, settled.Result2 = -2*input.Bid, tally2
			} else {
				settled.Result1, settled.Result2 = tally1, -2*input.Bid
			}
		}
	case ModeEinfachAb:
		// Conceded without evaluation: single penalty, no doubling.
		settled.Confirmation = ConfirmationRejected
		if input.BidTeam == Team1 {
			settled.Result1, settled.Result2 = -input.Bid, tally2
		} else {
			settled.Result1, settled.Result2 = tally1, -input.Bid
		}
	}

	settled.Total1 = input.PrevTotal1 + settled.Result1
	settled.Total2 = input.PrevTotal2 + settled.Result2

	// Only the bidding team's new total decides the game. The defenders'
	// total is deliberately never checked here: a team wins or loses the
	// game only through a round it bid on.
	bidTotal := settled.Total2
	if input.BidTeam == Team1 {
		bidTotal = settled.Total1
	}
	switch {
	case bidTotal >= WinningTotal:
		settled.Finished = true
		settled.Winner = input.BidTeam
	case bidTotal <= -WinningTotal:
		settled.Finished = true
		settled.Winner = input.BidTeam.Opponent()
	}
	if settled.Finished {
		settled.EndPoints1 = settled.Total1
		settled.EndPoints2 = settled.Total2
	}

	return settled, nil
}

func validateSettleInput(input SettleInput) error {
	switch input.Mode {
	case ModeNormal, ModeEinfachAb, ModeThousand:
	default:
		return apperrors.WithMetadata(apperrors.CodeRoundInvalidMode,
			"scoring mode is unknown",
			map[string]string{"mode": input.Mode.String()})
	}
	if input.BidTeam != Team1 && input.BidTeam != Team2 {
		return ErrInvalidBidTeam
	}
	if input.Bid < MinBid || input.Bid%BidStep != 0 {
		return apperrors.WithMetadata(apperrors.CodeRoundInvalidBid,
			"bid is below the minimum or not on the bid step",
			map[string]string{
				"min":  strconv.Itoa(MinBid),
				"step": strconv.Itoa(BidStep),
			})
	}
	if input.Meld1 < 0 || input.Meld2 < 0 || input.Play1 < 0 || input.Play2 < 0 {
		return ErrNegativePoints
	}
	return nil
}
