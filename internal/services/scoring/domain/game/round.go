package game

// Round is one scoring cycle on the sheet. Rounds are numbered from 1 with
// no gaps; only the highest-numbered round of a game is ever mutable.
type Round struct {
	Number int
	// Dealer is the 1-based index of the player who deals (mixes) this round.
	Dealer int
	// Bid is set by settlement; it is meaningful only once BidTeam is set.
	Bid     int
	BidTeam Team
	Meld1   int
	Meld2   int
	Play1   int
	Play2   int
	// Confirmation stays pending while the round is open.
	Confirmation Confirmation
	Result1      int
	Result2      int
	// Total1 and Total2 carry the cumulative score through this round. An
	// open round holds the previous round's totals as its starting point.
	Total1 int
	Total2 int
}

// Resolved reports whether the round has been settled.
func (r Round) Resolved() bool {
	return r.BidTeam != TeamNone
}

// FirstRound returns the opening skeleton for a new game.
func FirstRound(dealer int) Round {
	return Round{
		Number: 1,
		Dealer: dealer,
	}
}

// NextRound returns the skeleton that follows a settled round: the number
// advances, the deal rotates to the next player, and the totals carry over
// as the new round's starting point.
func NextRound(prev Round) Round {
	return Round{
		Number: prev.Number + 1,
		Dealer: prev.Dealer%PlayerCount + 1,
		Total1: prev.Total1,
		Total2: prev.Total2,
	}
}
