package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mrsnaggls2/binokel/internal/services/scoring/domain/game"
	"github.com/mrsnaggls2/binokel/internal/services/scoring/storage"
)

// EnsureLedger verifies the per-game ledger key range is addressable: the
// owning game row must exist. It is idempotent and performs no DDL.
func (s *Store) EnsureLedger(ctx context.Context, gameID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return fmt.Errorf("game id is required")
	}

	var one int
	err := s.sqlDB.QueryRowContext(ctx, `SELECT 1 FROM games WHERE id = ?`, gameID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("ensure ledger: %w", err)
	}
	return nil
}

// AppendRound adds a new round row to a game's ledger.
func (s *Store) AppendRound(ctx context.Context, gameID string, round storage.RoundRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return fmt.Errorf("game id is required")
	}
	if round.Number < 1 {
		return fmt.Errorf("round number must be positive")
	}

	result, err := s.sqlDB.ExecContext(ctx, insertRoundSQL, insertRoundArgs(gameID, round)...)
	if err != nil {
		return fmt.Errorf("append round: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("append round rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrAlreadyExists
	}
	return nil
}

// ListRounds returns a game's rounds ascending by number.
func (s *Store) ListRounds(ctx context.Context, gameID string) ([]storage.RoundRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, fmt.Errorf("game id is required")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT game_id, number, dealer, bid, bid_team,
		        meld1, meld2, play1, play2,
		        confirmation, result1, result2, total1, total2
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY number ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]storage.RoundRecord, 0)
	for rows.Next() {
		record, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rounds: %w", err)
	}
	return records, nil
}

// UpdateRound overwrites the mutable fields of an existing round row.
func (s *Store) UpdateRound(ctx context.Context, gameID string, round storage.RoundRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return fmt.Errorf("game id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, updateRoundSQL, updateRoundArgs(gameID, round)...)
	if err != nil {
		return fmt.Errorf("update round: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update round rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteRound removes one round row.
func (s *Store) DeleteRound(ctx context.Context, gameID string, number int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return fmt.Errorf("game id is required")
	}

	if _, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM rounds WHERE game_id = ? AND number = ?`,
		gameID, number,
	); err != nil {
		return fmt.Errorf("delete round: %w", err)
	}
	return nil
}

// DropRounds removes a game's entire ledger key range.
func (s *Store) DropRounds(ctx context.Context, gameID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return fmt.Errorf("game id is required")
	}

	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM rounds WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("drop rounds: %w", err)
	}
	return nil
}

const insertRoundSQL = `INSERT OR IGNORE INTO rounds (
    game_id, number, dealer, bid, bid_team,
    meld1, meld2, play1, play2,
    confirmation, result1, result2, total1, total2
 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const updateRoundSQL = `UPDATE rounds SET
    dealer = ?, bid = ?, bid_team = ?,
    meld1 = ?, meld2 = ?, play1 = ?, play2 = ?,
    confirmation = ?, result1 = ?, result2 = ?, total1 = ?, total2 = ?
 WHERE game_id = ? AND number = ?`

func insertRoundArgs(gameID string, round storage.RoundRecord) []any {
	return []any{
		gameID,
		int64(round.Number),
		int64(round.Dealer),
		toNullInt(round.Bid, round.BidTeam != game.TeamNone),
		teamToInt(round.BidTeam),
		int64(round.Meld1),
		int64(round.Meld2),
		int64(round.Play1),
		int64(round.Play2),
		int64(round.Confirmation),
		int64(round.Result1),
		int64(round.Result2),
		int64(round.Total1),
		int64(round.Total2),
	}
}

func updateRoundArgs(gameID string, round storage.RoundRecord) []any {
	return []any{
		int64(round.Dealer),
		toNullInt(round.Bid, round.BidTeam != game.TeamNone),
		teamToInt(round.BidTeam),
		int64(round.Meld1),
		int64(round.Meld2),
		int64(round.Play1),
		int64(round.Play2),
		int64(round.Confirmation),
		int64(round.Result1),
		int64(round.Result2),
		int64(round.Total1),
		int64(round.Total2),
		gameID,
		int64(round.Number),
	}
}

func scanRound(row rowScanner) (storage.RoundRecord, error) {
	var record storage.RoundRecord
	var bid sql.NullInt64
	var bidTeam, confirmation int64
	if err := row.Scan(
		&record.GameID,
		&record.Number,
		&record.Dealer,
		&bid,
		&bidTeam,
		&record.Meld1,
		&record.Meld2,
		&record.Play1,
		&record.Play2,
		&confirmation,
		&record.Result1,
		&record.Result2,
		&record.Total1,
		&record.Total2,
	); err != nil {
		return storage.RoundRecord{}, err
	}
	if bid.Valid {
		record.Bid = int(bid.Int64)
	}
	team, err := teamFromInt(bidTeam)
	if err != nil {
		return storage.RoundRecord{}, err
	}
	record.BidTeam = team
	conf, err := confirmationFromInt(confirmation)
	if err != nil {
		return storage.RoundRecord{}, err
	}
	record.Confirmation = conf
	return record, nil
}
