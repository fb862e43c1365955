package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the sqlite file at path with foreign keys on and a busy timeout.
// A single connection serialises writes.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	return db, nil
}

// Now is the finished_at stamp for score rows: UTC at whole-second precision,
// so rows written in the same second order by rowid.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
