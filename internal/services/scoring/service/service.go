// Package service orchestrates score-sheet use-cases over the storage
// contracts. Game rules live in the domain; this layer sequences loads,
// settlement, and the atomic writes that follow.
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/mrsnaggls2/binokel/internal/platform/errors"
	"github.com/mrsnaggls2/binokel/internal/platform/id"
	"github.com/mrsnaggls2/binokel/internal/services/scoring/domain/game"
	"github.com/mrsnaggls2/binokel/internal/services/scoring/storage"
)

// ErrStoresNotConfigured indicates the service is missing persistence wiring.
var ErrStoresNotConfigured = errors.New("scoring stores are not configured")

// Service exposes the score-tracking use-cases.
type Service struct {
	stores storage.Stores
	clock  func() time.Time
	newID  func() (string, error)
}

// NewService constructs scoring use-cases over the given stores.
func NewService(stores storage.Stores, clock func() time.Time, newID func() (string, error)) *Service {
	if clock == nil {
		clock = time.Now
	}
	if newID == nil {
		newID = id.NewID
	}
	return &Service{
		stores: stores,
		clock:  clock,
		newID:  newID,
	}
}

func (s *Service) configured() error {
	if s == nil || s.stores.Games == nil || s.stores.Rounds == nil || s.stores.Settlements == nil {
		return ErrStoresNotConfigured
	}
	return nil
}

// CreateGame registers a new game and opens its round-1 skeleton.
func (s *Service) CreateGame(ctx context.Context, input game.CreateGameInput) (game.Game, error) {
	if err := s.configured(); err != nil {
		return game.Game{}, err
	}

	created, err := game.CreateGame(input, s.clock, s.newID)
	if err != nil {
		return game.Game{}, err
	}

	if err := s.stores.Games.PutGame(ctx, gameToRecord(created)); err != nil {
		return game.Game{}, fmt.Errorf("put game: %w", err)
	}
	if err := s.stores.Rounds.EnsureLedger(ctx, created.ID); err != nil {
		return game.Game{}, fmt.Errorf("ensure ledger: %w", err)
	}

	first := game.FirstRound(input.Dealer)
	if err := s.stores.Rounds.AppendRound(ctx, created.ID, roundToRecord(created.ID, first)); err != nil {
		return game.Game{}, fmt.Errorf("append first round: %w", err)
	}
	return created, nil
}

// ListGames returns all games, most recently created first.
func (s *Service) ListGames(ctx context.Context) ([]game.Game, error) {
	if err := s.configured(); err != nil {
		return nil, err
	}

	records, err := s.stores.Games.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	games := make([]game.Game, 0, len(records))
	for _, record := range records {
		games = append(games, gameFromRecord(record))
	}
	return games, nil
}

// GetGame loads one game with its full round ledger.
func (s *Service) GetGame(ctx context.Context, gameID string) (game.Game, []game.Round, error) {
	if err := s.configured(); err != nil {
		return game.Game{}, nil, err
	}
	gameID = strings.TrimSpace(gameID)

	record, err := s.stores.Games.GetGame(ctx, gameID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return game.Game{}, nil, errGameNotFound(gameID)
		}
		return game.Game{}, nil, fmt.Errorf("get game: %w", err)
	}

	roundRecords, err := s.stores.Rounds.ListRounds(ctx, gameID)
	if err != nil {
		return game.Game{}, nil, fmt.Errorf("list rounds: %w", err)
	}
	rounds := make([]game.Round, 0, len(roundRecords))
	for _, roundRecord := range roundRecords {
		rounds = append(rounds, roundFromRecord(roundRecord))
	}
	return gameFromRecord(record), rounds, nil
}

// RecordRoundInput carries one round's declared outcome.
type RecordRoundInput struct {
	GameID string
	// Number must be the game's current (highest, open) round number.
	Number  int
	Mode    game.Mode
	Bid     int
	BidTeam game.Team
	Meld1   int
	Meld2   int
	Play1   int
	Play2   int
}

// RecordRoundResult reports the settled outcome of one round.
type RecordRoundResult struct {
	Confirmation game.Confirmation
	Result1      int
	Result2      int
	Total1       int
	Total2       int
	Finished     bool
	Winner       game.Team
	EndPoints1   int
	EndPoints2   int
}

// RecordRound settles the game's current round: it computes results and new
// totals, persists them atomically, and either finishes the game or opens
// the next round.
func (s *Service) RecordRound(ctx context.Context, input RecordRoundInput) (RecordRoundResult, error) {
	if err := s.configured(); err != nil {
		return RecordRoundResult{}, err
	}
	gameID := strings.TrimSpace(input.GameID)

	gameRecord, err := s.stores.Games.GetGame(ctx, gameID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return RecordRoundResult{}, errGameNotFound(gameID)
		}
		return RecordRoundResult{}, fmt.Errorf("get game: %w", err)
	}
	if gameFromRecord(gameRecord).Finished() {
		return RecordRoundResult{}, apperrors.WithMetadata(apperrors.CodeGameFinished,
			"game is already finished",
			map[string]string{"game_id": gameID})
	}

	roundRecords, err := s.stores.Rounds.ListRounds(ctx, gameID)
	if err != nil {
		return RecordRoundResult{}, fmt.Errorf("list rounds: %w", err)
	}
	if len(roundRecords) == 0 {
		return RecordRoundResult{}, apperrors.WithMetadata(apperrors.CodeRoundNotCurrent,
			"game has no open round",
			map[string]string{"game_id": gameID})
	}
	current := roundRecords[len(roundRecords)-1]
	if input.Number != current.Number {
		return RecordRoundResult{}, apperrors.WithMetadata(apperrors.CodeRoundNotCurrent,
			"only the current round can be settled",
			map[string]string{
				"number":  strconv.Itoa(input.Number),
				"current": strconv.Itoa(current.Number),
			})
	}

	prevTotal1, prevTotal2 := 0, 0
	if len(roundRecords) > 1 {
		prev := roundRecords[len(roundRecords)-2]
		prevTotal1, prevTotal2 = prev.Total1, prev.Total2
	}

	settled, err := game.Settle(game.SettleInput{
		Mode:       input.Mode,
		Bid:        input.Bid,
		BidTeam:    input.BidTeam,
		Meld1:      input.Meld1,
		Meld2:      input.Meld2,
		Play1:      input.Play1,
		Play2:      input.Play2,
		PrevTotal1: prevTotal1,
		PrevTotal2: prevTotal2,
	})
	if err != nil {
		return RecordRoundResult{}, err
	}

	write := storage.SettlementWrite{GameID: gameID}
	if input.Mode == game.ModeThousand {
		// The declared round never appears on the sheet.
		write.Round = storage.RoundRecord{GameID: gameID, Number: current.Number}
		write.DeleteRound = true
		write.Outcome = &storage.GameOutcome{
			EndPoints1: settled.EndPoints1,
			EndPoints2: settled.EndPoints2,
			Winner:     settled.Winner,
		}
	} else {
		write.Round = storage.RoundRecord{
			GameID:       gameID,
			Number:       current.Number,
			Dealer:       current.Dealer,
			Bid:          input.Bid,
			BidTeam:      input.BidTeam,
			Meld1:        input.Meld1,
			Meld2:        input.Meld2,
			Play1:        input.Play1,
			Play2:        input.Play2,
			Confirmation: settled.Confirmation,
			Result1:      settled.Result1,
			Result2:      settled.Result2,
			Total1:       settled.Total1,
			Total2:       settled.Total2,
		}
		if settled.Finished {
			write.Outcome = &storage.GameOutcome{
				EndPoints1: settled.EndPoints1,
				EndPoints2: settled.EndPoints2,
				Winner:     settled.Winner,
			}
		} else {
			next := game.NextRound(roundFromRecord(write.Round))
			nextRecord := roundToRecord(gameID, next)
			write.NextRound = &nextRecord
		}
	}

	if err := s.stores.Settlements.ApplySettlement(ctx, write); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return RecordRoundResult{}, errGameNotFound(gameID)
		case errors.Is(err, storage.ErrOutcomeConflict):
			return RecordRoundResult{}, apperrors.WithMetadata(apperrors.CodeGameOutcomeConflict,
				"game outcome was already recorded with different values",
				map[string]string{"game_id": gameID})
		case errors.Is(err, storage.ErrAlreadyExists):
			return RecordRoundResult{}, apperrors.WithMetadata(apperrors.CodeRoundAlreadyExists,
				"next round already exists",
				map[string]string{"number": strconv.Itoa(current.Number + 1)})
		}
		return RecordRoundResult{}, fmt.Errorf("apply settlement: %w", err)
	}

	return RecordRoundResult{
		Confirmation: settled.Confirmation,
		Result1:      settled.Result1,
		Result2:      settled.Result2,
		Total1:       settled.Total1,
		Total2:       settled.Total2,
		Finished:     settled.Finished,
		Winner:       settled.Winner,
		EndPoints1:   settled.EndPoints1,
		EndPoints2:   settled.EndPoints2,
	}, nil
}

// DeleteGame removes a game and its ledger. Deleting a missing game is a
// no-op.
func (s *Service) DeleteGame(ctx context.Context, gameID string) error {
	if err := s.configured(); err != nil {
		return err
	}
	gameID = strings.TrimSpace(gameID)

	if err := s.stores.Rounds.DropRounds(ctx, gameID); err != nil {
		return fmt.Errorf("drop rounds: %w", err)
	}
	if err := s.stores.Games.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}

func errGameNotFound(gameID string) error {
	return apperrors.WithMetadata(apperrors.CodeNotFound,
		"game not found",
		map[string]string{"game_id": gameID})
}
