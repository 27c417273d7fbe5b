package migrations

import "embed"

// FS contains embedded SQLite migrations for scoring storage.
//
//go:embed *.sql
var FS embed.FS
