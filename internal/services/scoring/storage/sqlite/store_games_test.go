package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mrsnaggls2/binokel/internal/services/scoring/domain/game"
	"github.com/mrsnaggls2/binokel/internal/services/scoring/storage"
)

func TestGamePutGet(t *testing.T) {
	store := openTestStore(t)
	now := time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)

	expected := testGameRecord("game-crud", now)
	if err := store.PutGame(context.Background(), expected); err != nil {
		t.Fatalf("put game: %v", err)
	}

	got, err := store.GetGame(context.Background(), expected.ID)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if got.ID != expected.ID {
		t.Fatalf("expected game id to match, got %q", got.ID)
	}
	if got.Players != expected.Players {
		t.Fatalf("expected players to match, got %v", got.Players)
	}
	if got.TeamName1 != expected.TeamName1 || got.TeamName2 != expected.TeamName2 {
		t.Fatalf("expected team names to match")
	}
	if !got.CreatedAt.Equal(expected.CreatedAt) {
		t.Fatalf("expected created timestamp to match, got %v", got.CreatedAt)
	}
	if got.EndPoints1 != nil || got.EndPoints2 != nil || got.Winner != game.TeamNone {
		t.Fatalf("expected open game without outcome")
	}
}

func TestGamePutDuplicate(t *testing.T) {
	store := openTestStore(t)
	now := time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)

	record := testGameRecord("game-dup", now)
	if err := store.PutGame(context.Background(), record); err != nil {
		t.Fatalf("put game: %v", err)
	}
	if err := store.PutGame(context.Background(), record); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestGetGameMissing(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.GetGame(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListGamesNewestFirst(t *testing.T) {
	store := openTestStore(t)
	now := time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)

	older := testGameRecord("game-older", now)
	newer := testGameRecord("game-newer", now.Add(time.Hour))
	if err := store.PutGame(context.Background(), older); err != nil {
		t.Fatalf("put older game: %v", err)
	}
	if err := store.PutGame(context.Background(), newer); err != nil {
		t.Fatalf("put newer game: %v", err)
	}

	games, err := store.ListGames(context.Background())
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected two games, got %d", len(games))
	}
	if games[0].ID != newer.ID || games[1].ID != older.ID {
		t.Fatalf("expected newest first, got %q then %q", games[0].ID, games[1].ID)
	}
}

func TestSetGameOutcomeWriteOnce(t *testing.T) {
	store := openTestStore(t)
	now := time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)

	record := testGameRecord("game-outcome", now)
	if err := store.PutGame(context.Background(), record); err != nil {
		t.Fatalf("put game: %v", err)
	}

	outcome := storage.GameOutcome{EndPoints1: 1030, EndPoints2: 640, Winner: game.Team1}
	if err := store.SetGameOutcome(context.Background(), record.ID, outcome); err != nil {
		t.Fatalf("set outcome: %v", err)
	}

	got, err := store.GetGame(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if got.EndPoints1 == nil || *got.EndPoints1 != 1030 {
		t.Fatalf("expected end points for team1, got %v", got.EndPoints1)
	}
	if got.EndPoints2 == nil || *got.EndPoints2 != 640 {
		t.Fatalf("expected end points for team2, got %v", got.EndPoints2)
	}
	if got.Winner != game.Team1 {
		t.Fatalf("expected team1 winner, got %v", got.Winner)
	}

	// Identical re-set is a no-op.
	if err := store.SetGameOutcome(context.Background(), record.ID, outcome); err != nil {
		t.Fatalf("identical outcome re-set: %v", err)
	}

	conflicting := storage.GameOutcome{EndPoints1: 500, EndPoints2: 1200, Winner: game.Team2}
	if err := store.SetGameOutcome(context.Background(), record.ID, conflicting); !errors.Is(err, storage.ErrOutcomeConflict) {
		t.Fatalf("expected outcome conflict, got %v", err)
	}
}

func TestSetGameOutcomeMissingGame(t *testing.T) {
	store := openTestStore(t)

	err := store.SetGameOutcome(context.Background(), "missing", storage.GameOutcome{Winner: game.Team1})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteGameIdempotent(t *testing.T) {
	store := openTestStore(t)
	now := time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)

	record := testGameRecord("game-delete", now)
	if err := store.PutGame(context.Background(), record); err != nil {
		t.Fatalf("put game: %v", err)
	}

	if err := store.DeleteGame(context.Background(), record.ID); err != nil {
		t.Fatalf("delete game: %v", err)
	}
	if _, err := store.GetGame(context.Background(), record.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected deleted game to be gone, got %v", err)
	}
	if err := store.DeleteGame(context.Background(), record.ID); err != nil {
		t.Fatalf("repeat delete game: %v", err)
	}
}
