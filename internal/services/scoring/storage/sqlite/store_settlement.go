package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrsnaggls2/binokel/internal/services/scoring/storage"
)

// ApplySettlement closes a round in one transaction: the current round row
// is updated (or deleted for an instant-win declaration), then either the
// game outcome is recorded or the next round skeleton appended.
func (s *Store) ApplySettlement(ctx context.Context, write storage.SettlementWrite) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	gameID := strings.TrimSpace(write.GameID)
	if gameID == "" {
		return fmt.Errorf("game id is required")
	}
	if write.Round.Number < 1 {
		return fmt.Errorf("round number must be positive")
	}
	if write.Outcome != nil && write.NextRound != nil {
		return fmt.Errorf("settlement cannot both finish the game and open a next round")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if write.DeleteRound {
		if _, err := tx.ExecContext(
			ctx,
			`DELETE FROM rounds WHERE game_id = ? AND number = ?`,
			gameID, int64(write.Round.Number),
		); err != nil {
			return fmt.Errorf("delete settled round: %w", err)
		}
	} else {
		result, err := tx.ExecContext(ctx, updateRoundSQL, updateRoundArgs(gameID, write.Round)...)
		if err != nil {
			return fmt.Errorf("update settled round: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("update settled round rows affected: %w", err)
		}
		if affected == 0 {
			return storage.ErrNotFound
		}
	}

	if write.Outcome != nil {
		if err := setGameOutcomeTx(ctx, tx, gameID, *write.Outcome); err != nil {
			return err
		}
	}

	if write.NextRound != nil {
		result, err := tx.ExecContext(ctx, insertRoundSQL, insertRoundArgs(gameID, *write.NextRound)...)
		if err != nil {
			return fmt.Errorf("append next round: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("append next round rows affected: %w", err)
		}
		if affected == 0 {
			return storage.ErrAlreadyExists
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit settlement: %w", err)
	}
	return nil
}
