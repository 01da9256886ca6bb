package sqlite

import (
	"database/sql"
	"fmt"

	"notion-gcal-sync/internal/credential/repository"
	"notion-gcal-sync/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed credential Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("credential/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("credential/repository/sqlite.%s", method)
}
