package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mrsnaggls2/binokel/internal/services/scoring/storage"
)

// PutGame inserts a new game row.
func (s *Store) PutGame(ctx context.Context, record storage.GameRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("game id is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO games (
		    id, player1, player2, player3, player4,
		    team_name1, team_name2, created_at,
		    end_points1, end_points2, winner
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Players[0],
		record.Players[1],
		record.Players[2],
		record.Players[3],
		record.TeamName1,
		record.TeamName2,
		toMillis(record.CreatedAt),
		toNullInt(deref(record.EndPoints1), record.EndPoints1 != nil),
		toNullInt(deref(record.EndPoints2), record.EndPoints2 != nil),
		teamToInt(record.Winner),
	)
	if err != nil {
		return fmt.Errorf("put game: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("put game rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrAlreadyExists
	}
	return nil
}

// GetGame loads one game row by id.
func (s *Store) GetGame(ctx context.Context, id string) (storage.GameRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.GameRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.GameRecord{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.GameRecord{}, fmt.Errorf("game id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, player1, player2, player3, player4,
		        team_name1, team_name2, created_at,
		        end_points1, end_points2, winner
		 FROM games
		 WHERE id = ?`,
		id,
	)
	record, err := scanGame(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.GameRecord{}, storage.ErrNotFound
		}
		return storage.GameRecord{}, fmt.Errorf("get game: %w", err)
	}
	return record, nil
}

// ListGames returns all game rows, most recently created first.
func (s *Store) ListGames(ctx context.Context) ([]storage.GameRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, player1, player2, player3, player4,
		        team_name1, team_name2, created_at,
		        end_points1, end_points2, winner
		 FROM games
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]storage.GameRecord, 0)
	for rows.Next() {
		record, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}
	return records, nil
}

// SetGameOutcome records a game's terminal result exactly once. Re-setting
// an identical outcome is a no-op; any differing re-set fails.
func (s *Store) SetGameOutcome(ctx context.Context, id string, outcome storage.GameOutcome) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("game id is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := setGameOutcomeTx(ctx, tx, id, outcome); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteGame removes a game row. Deleting a missing game is a no-op; round
// cleanup is coordinated by the caller.
func (s *Store) DeleteGame(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("game id is required")
	}

	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}

// setGameOutcomeTx applies the write-once outcome check inside tx.
func setGameOutcomeTx(ctx context.Context, tx *sql.Tx, id string, outcome storage.GameOutcome) error {
	row := tx.QueryRowContext(
		ctx,
		`SELECT end_points1, end_points2, winner FROM games WHERE id = ?`,
		id,
	)
	var end1, end2 sql.NullInt64
	var winner int64
	if err := row.Scan(&end1, &end2, &winner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("load game outcome: %w", err)
	}

	if end1.Valid || end2.Valid || winner != 0 {
		same := end1.Valid && end2.Valid &&
			int(end1.Int64) == outcome.EndPoints1 &&
			int(end2.Int64) == outcome.EndPoints2 &&
			winner == teamToInt(outcome.Winner)
		if same {
			return nil
		}
		return storage.ErrOutcomeConflict
	}

	if _, err := tx.ExecContext(
		ctx,
		`UPDATE games SET end_points1 = ?, end_points2 = ?, winner = ? WHERE id = ?`,
		int64(outcome.EndPoints1),
		int64(outcome.EndPoints2),
		teamToInt(outcome.Winner),
		id,
	); err != nil {
		return fmt.Errorf("set game outcome: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (storage.GameRecord, error) {
	var record storage.GameRecord
	var createdAt int64
	var end1, end2 sql.NullInt64
	var winner int64
	if err := row.Scan(
		&record.ID,
		&record.Players[0],
		&record.Players[1],
		&record.Players[2],
		&record.Players[3],
		&record.TeamName1,
		&record.TeamName2,
		&createdAt,
		&end1,
		&end2,
		&winner,
	); err != nil {
		return storage.GameRecord{}, err
	}
	record.CreatedAt = fromMillis(createdAt)
	record.EndPoints1 = fromNullInt(end1)
	record.EndPoints2 = fromNullInt(end2)
	team, err := teamFromInt(winner)
	if err != nil {
		return storage.GameRecord{}, err
	}
	record.Winner = team
	return record, nil
}

func deref(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
