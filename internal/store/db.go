package store

import (
	"database/sql"

	"github.com/MKhiriev/go-rm-cloud/internal/logger"
	"github.com/MKhiriev/go-rm-cloud/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
