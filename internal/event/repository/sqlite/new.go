package sqlite

import (
	"database/sql"
	"fmt"

	"notion-gcal-sync/internal/event/repository"
	"notion-gcal-sync/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed event cache.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("event/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/sqlite.%s", method)
}
