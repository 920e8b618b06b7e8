package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/hterhoeven/cardlens/helper"
)

// loadCollection reads the full serialized snapshot of one collection.
// The second return value is false when the collection has never been saved.
func loadCollection(db *helper.Database, name string) ([]byte, bool, error) {
	var payload []byte
	err := db.Instance.QueryRow(
		`SELECT payload FROM collections WHERE name = ?`,
		name,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, helper.NewError("load collection", err)
	}
	return payload, true, nil
}

// saveCollection replaces the full serialized snapshot of one collection.
// The write is a single statement; there is no partial-write window.
func saveCollection(db *helper.Database, name string, payload []byte) error {
	_, err := db.Instance.Exec(
		`INSERT INTO collections (name, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		name,
		payload,
		time.Now().Unix(),
	)
	if err != nil {
		return helper.NewError("save collection", err)
	}
	return nil
}
