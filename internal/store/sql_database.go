package store

import (
	"github.com/fintrack/fintrack/migrations"
)

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
