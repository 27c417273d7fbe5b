package game

import (
	"errors"
	"testing"

	apperrors "github.com/mrsnaggls2/binokel/internal/platform/errors"
)

func TestSettleNormalBidMet(t *testing.T) {
	settled, err := Settle(SettleInput{
		Mode:    ModeNormal,
		Bid:     220,
		BidTeam: Team1,
		Meld1:   100,
		Play1:   150,
		Meld2:   40,
		Play2:   60,
	})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if settled.Confirmation != ConfirmationMet {
		t.Fatalf("expected met confirmation, got %v", settled.Confirmation)
	}
	if settled.Result1 != 250 {
		t.Fatalf("expected result1 250, got %d", settled.Result1)
	}
	if settled.Result2 != 100 {
		t.Fatalf("expected result2 100, got %d", settled.Result2)
	}
	if settled.Total1 != 250 || settled.Total2 != 100 {
		t.Fatalf("unexpected totals %d/%d", settled.Total1, settled.Total2)
	}
	if settled.Finished {
		t.Fatal("expected game to continue")
	}
}

func TestSettleNormalBidMissedDoublesPenalty(t *testing.T) {
	settled, err := Settle(SettleInput{
		Mode:    ModeNormal,
		Bid:     220,
		BidTeam: Team1,
		Meld1:   50,
		Play1:   100,
		Meld2:   80,
		Play2:   90,
	})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if settled.Confirmation != ConfirmationRejected {
		t.Fatalf("expected rejected confirmation, got %v", settled.Confirmation)
	}
	if settled.Result1 != -440 {
		t.Fatalf("expected result1 -440, got %d", settled.Result1)
	}
	if settled.Result2 != 170 {
		t.Fatalf("expected defenders to keep their tally, got %d", settled.Result2)
	}
}

func TestSettleNormalDefendersAlwaysScore(t *testing.T) {
	settled, err := Settle(SettleInput{
		Mode:    ModeNormal,
		Bid:     300,
		BidTeam: Team2,
		Meld1:   120,
		Play1:   90,
		Meld2:   150,
		Play2:   160,
	})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if settled.Confirmation != ConfirmationMet {
		t.Fatalf("expected met confirmation, got %v", settled.Confirmation)
	}
	if settled.Result2 != 310 {
		t.Fatalf("expected result2 310, got %d", settled.Result2)
	}
	if settled.Result1 != 210 {
		t.Fatalf("expected result1 210, got %d", settled.Result1)
	}
}

func TestSettleEinfachAbFixedPenalty(t *testing.T) {
	settled, err := Settle(SettleInput{
		Mode:    ModeEinfachAb,
		Bid:     200,
		BidTeam: Team2,
		Meld1:   70,
		Play1:   30,
		Meld2:   500,
		Play2:   500,
	})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if settled.Result2 != -200 {
		t.Fatalf("expected exactly -200 regardless of own points, got %d", settled.Result2)
	}
	if settled.Result1 != 100 {
		t.Fatalf("expected result1 100, got %d", settled.Result1)
	}
	if settled.Confirmation != ConfirmationRejected {
		t.Fatalf("expected rejected confirmation, got %v", settled.Confirmation)
	}
}

func TestSettleThousandAwardsGame(t *testing.T) {
	settled, err := Settle(SettleInput{
		Mode:       ModeThousand,
		Bid:        400,
		BidTeam:    Team1,
		PrevTotal1: -620,
		PrevTotal2: 480,
	})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if !settled.Finished {
		t.Fatal("expected instant finish")
	}
	if settled.Winner != Team1 {
		t.Fatalf("expected team 1 winner, got %v", settled.Winner)
	}
	if settled.EndPoints1 != 1000 || settled.EndPoints2 != 0 {
		t.Fatalf("expected 1000/0, got %d/%d", settled.EndPoints1, settled.EndPoints2)
	}
	if settled.Total1 != 0 || settled.Total2 != 0 {
		t.Fatal("expected totals untouched by thousand declaration")
	}
}

func TestSettleBiddingTeamWinsAtThousand(t *testing.T) {
	settled, err := Settle(SettleInput{
		Mode:       ModeNormal,
		Bid:        300,
		BidTeam:    Team1,
		Meld1:      200,
		Play1:      150,
		PrevTotal1: 700,
		PrevTotal2: 400,
	})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if !settled.Finished || settled.Winner != Team1 {
		t.Fatalf("expected team 1 win, got finished=%v winner=%v", settled.Finished, settled.Winner)
	}
	if settled.EndPoints1 != 1050 || settled.EndPoints2 != 400 {
		t.Fatalf("expected end points 1050/400, got %d/%d", settled.EndPoints1, settled.EndPoints2)
	}
}

func TestSettleBiddingTeamCollapseAwardsOpponents(t *testing.T) {
	settled, err := Settle(SettleInput{
		Mode:       ModeNormal,
		Bid:        300,
		BidTeam:    Team1,
		Meld1:      0,
		Play1:      0,
		PrevTotal1: -500,
		PrevTotal2: 200,
	})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if settled.Total1 != -1100 {
		t.Fatalf("expected total1 -1100, got %d", settled.Total1)
	}
	if !settled.Finished || settled.Winner != Team2 {
		t.Fatalf("expected team 2 win, got finished=%v winner=%v", settled.Finished, settled.Winner)
	}
}

// The defenders' total is never checked in a round they did not bid: even a
// total far past the threshold leaves the game running.
func TestSettleDefenderTotalNeverEndsGame(t *testing.T) {
	settled, err := Settle(SettleInput{
		Mode:       ModeNormal,
		Bid:        200,
		BidTeam:    Team2,
		Meld1:      100,
		Play1:      50,
		Meld2:      150,
		Play2:      100,
		PrevTotal1: 950,
		PrevTotal2: 100,
	})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if settled.Total1 != 1100 {
		t.Fatalf("expected total1 1100, got %d", settled.Total1)
	}
	if settled.Finished {
		t.Fatal("expected game to continue despite defenders' total")
	}
}

func TestSettleEinfachAbCanEndGame(t *testing.T) {
	settled, err := Settle(SettleInput{
		Mode:       ModeEinfachAb,
		Bid:        250,
		BidTeam:    Team2,
		PrevTotal1: 300,
		PrevTotal2: -800,
	})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if settled.Total2 != -1050 {
		t.Fatalf("expected total2 -1050, got %d", settled.Total2)
	}
	if !settled.Finished || settled.Winner != Team1 {
		t.Fatalf("expected team 1 win, got finished=%v winner=%v", settled.Finished, settled.Winner)
	}
}

func TestSettleValidation(t *testing.T) {
	cases := []struct {
		name  string
		input SettleInput
		code  apperrors.Code
	}{
		{
			name:  "unknown mode",
			input: SettleInput{Bid: 200, BidTeam: Team1},
			code:  apperrors.CodeRoundInvalidMode,
		},
		{
			name:  "bid below minimum",
			input: SettleInput{Mode: ModeNormal, Bid: 190, BidTeam: Team1},
			code:  apperrors.CodeRoundInvalidBid,
		},
		{
			name:  "bid off step",
			input: SettleInput{Mode: ModeNormal, Bid: 205, BidTeam: Team1},
			code:  apperrors.CodeRoundInvalidBid,
		},
		{
			name:  "missing bid team",
			input: SettleInput{Mode: ModeNormal, Bid: 200},
			code:  apperrors.CodeRoundInvalidBidTeam,
		},
		{
			name:  "negative meld",
			input: SettleInput{Mode: ModeNormal, Bid: 200, BidTeam: Team1, Meld2: -10},
			code:  apperrors.CodeRoundNegativePoints,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Settle(tc.input)
			if err == nil {
				t.Fatal("expected error")
			}
			var appErr *apperrors.Error
			if !errors.As(err, &appErr) {
				t.Fatalf("expected domain error, got %v", err)
			}
			if appErr.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, appErr.Code)
			}
		})
	}
}
