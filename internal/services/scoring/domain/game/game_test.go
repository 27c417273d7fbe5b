package game

import (
	"errors"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)
}

func staticID(value string) func() (string, error) {
	return func() (string, error) { return value, nil }
}

func TestCreateGameDerivesTeams(t *testing.T) {
	g, err := CreateGame(CreateGameInput{
		Players: [4]string{" Anna ", "Ben", "Clara", "David"},
		Dealer:  2,
	}, fixedClock, staticID("game-1"))
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	if g.ID != "game-1" {
		t.Fatalf("expected generated id, got %q", g.ID)
	}
	if g.Players[0] != "Anna" {
		t.Fatalf("expected trimmed player name, got %q", g.Players[0])
	}
	if g.TeamName1 != "Anna & Clara" {
		t.Fatalf("unexpected team name 1 %q", g.TeamName1)
	}
	if g.TeamName2 != "Ben & David" {
		t.Fatalf("unexpected team name 2 %q", g.TeamName2)
	}
	if !g.CreatedAt.Equal(fixedClock()) {
		t.Fatalf("unexpected creation time %v", g.CreatedAt)
	}
	if g.Finished() {
		t.Fatal("new game must not be finished")
	}
}

func TestCreateGameValidation(t *testing.T) {
	_, err := CreateGame(CreateGameInput{
		Players: [4]string{"Anna", "  ", "Clara", "David"},
		Dealer:  1,
	}, fixedClock, staticID("x"))
	if !errors.Is(err, ErrEmptyPlayerName) {
		t.Fatalf("expected empty player name error, got %v", err)
	}

	_, err = CreateGame(CreateGameInput{
		Players: [4]string{"Anna", "Ben", "Clara", "David"},
		Dealer:  5,
	}, fixedClock, staticID("x"))
	if !errors.Is(err, ErrInvalidDealer) {
		t.Fatalf("expected invalid dealer error, got %v", err)
	}
}

func TestTeamForPlayer(t *testing.T) {
	expected := map[int]Team{1: Team1, 2: Team2, 3: Team1, 4: Team2, 0: TeamNone, 5: TeamNone}
	for index, want := range expected {
		if got := TeamForPlayer(index); got != want {
			t.Errorf("player %d: got %v, want %v", index, got, want)
		}
	}
}

func TestTeamOpponent(t *testing.T) {
	if Team1.Opponent() != Team2 || Team2.Opponent() != Team1 {
		t.Fatal("expected teams to oppose each other")
	}
	if TeamNone.Opponent() != TeamNone {
		t.Fatal("expected no opponent for unset team")
	}
}

func TestParseTeam(t *testing.T) {
	if team, ok := ParseTeam("team1"); !ok || team != Team1 {
		t.Fatalf("expected team1, got %v %v", team, ok)
	}
	if team, ok := ParseTeam("2"); !ok || team != Team2 {
		t.Fatalf("expected team2, got %v %v", team, ok)
	}
	if _, ok := ParseTeam("team3"); ok {
		t.Fatal("expected parse failure")
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"normal":     ModeNormal,
		"einfach_ab": ModeEinfachAb,
		"thousand":   ModeThousand,
		"tausend":    ModeThousand,
	}
	for label, want := range cases {
		mode, ok := ParseMode(label)
		if !ok || mode != want {
			t.Errorf("%q: got %v %v", label, mode, ok)
		}
	}
	if _, ok := ParseMode("durch"); ok {
		t.Fatal("expected parse failure for unknown mode")
	}
}
