// Package storage defines persistence contracts for score-tracking state.
// Stores are passive: all game rules live in the domain and service layers.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/mrsnaggls2/binokel/internal/services/scoring/domain/game"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness-constrained record already exists.
var ErrAlreadyExists = errors.New("record already exists")

// ErrOutcomeConflict indicates a game outcome was already recorded with
// different values.
var ErrOutcomeConflict = errors.New("game outcome already recorded with different values")

// GameRecord stores one game's static identity and, once finished, its
// terminal outcome.
type GameRecord struct {
	ID         string
	Players    [game.PlayerCount]string
	TeamName1  string
	TeamName2  string
	CreatedAt  time.Time
	EndPoints1 *int
	EndPoints2 *int
	Winner     game.Team
}

// GameOutcome is the terminal result written exactly once per game.
type GameOutcome struct {
	EndPoints1 int
	EndPoints2 int
	Winner     game.Team
}

// RoundRecord stores one round row in a game's ledger.
type RoundRecord struct {
	GameID       string
	Number       int
	Dealer       int
	Bid          int
	BidTeam      game.Team
	Meld1        int
	Meld2        int
	Play1        int
	Play2        int
	Confirmation game.Confirmation
	Result1      int
	Result2      int
	Total1       int
	Total2       int
}

// SettlementWrite describes the one atomic write that closes a round: the
// current round is updated (or deleted for an instant-win declaration), and
// either the game outcome is recorded or the next round skeleton appended.
type SettlementWrite struct {
	GameID string
	// Round carries the settled state of the current round. When DeleteRound
	// is set the round row is removed instead and only Round.Number is used.
	Round       RoundRecord
	DeleteRound bool
	// NextRound, when non-nil, is appended in the same transaction.
	NextRound *RoundRecord
	// Outcome, when non-nil, is written to the game row in the same
	// transaction.
	Outcome *GameOutcome
}

// GameStore persists game identity and terminal outcome rows.
type GameStore interface {
	PutGame(ctx context.Context, record GameRecord) error
	GetGame(ctx context.Context, id string) (GameRecord, error)
	ListGames(ctx context.Context) ([]GameRecord, error)
	SetGameOutcome(ctx context.Context, id string, outcome GameOutcome) error
	DeleteGame(ctx context.Context, id string) error
}

// RoundStore persists the per-game round ledger. Each game owns the key
// range of its own rows; no rows are shared between games.
type RoundStore interface {
	EnsureLedger(ctx context.Context, gameID string) error
	AppendRound(ctx context.Context, gameID string, round RoundRecord) error
	ListRounds(ctx context.Context, gameID string) ([]RoundRecord, error)
	UpdateRound(ctx context.Context, gameID string, round RoundRecord) error
	DeleteRound(ctx context.Context, gameID string, number int) error
	DropRounds(ctx context.Context, gameID string) error
}

// SettlementStore applies a round settlement as one atomic unit.
type SettlementStore interface {
	ApplySettlement(ctx context.Context, write SettlementWrite) error
}

// Stores groups the storage interfaces the scoring service depends on.
type Stores struct {
	Games       GameStore
	Rounds      RoundStore
	Settlements SettlementStore
}
