// Package sqlite provides SQLite-backed persistence for the scoring service.
package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mrsnaggls2/binokel/internal/platform/storage/sqlitemigrate"
	"github.com/mrsnaggls2/binokel/internal/services/scoring/domain/game"
	"github.com/mrsnaggls2/binokel/internal/services/scoring/storage"
	"github.com/mrsnaggls2/binokel/internal/services/scoring/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for games and their round ledgers.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a scoring SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func toNullInt(value int, valid bool) sql.NullInt64 {
	if !valid {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(value), Valid: true}
}

func fromNullInt(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	v := int(value.Int64)
	return &v
}

func teamToInt(value game.Team) int64 {
	return int64(value)
}

func teamFromInt(value int64) (game.Team, error) {
	switch game.Team(value) {
	case game.TeamNone, game.Team1, game.Team2:
		return game.Team(value), nil
	default:
		return game.TeamNone, fmt.Errorf("unknown team value %d", value)
	}
}

func confirmationFromInt(value int64) (game.Confirmation, error) {
	switch game.Confirmation(value) {
	case game.ConfirmationPending, game.ConfirmationMet, game.ConfirmationRejected:
		return game.Confirmation(value), nil
	default:
		return game.ConfirmationPending, fmt.Errorf("unknown confirmation value %d", value)
	}
}

var _ storage.GameStore = (*Store)(nil)
var _ storage.RoundStore = (*Store)(nil)
var _ storage.SettlementStore = (*Store)(nil)
