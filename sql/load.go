package sql

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed init.sql
var initSQL string

// Collection names backed by the collections table.
const (
	CollectionCards         = "cards"
	CollectionHotelContacts = "hotel_contacts"
)

// Init creates the collections table. Safe to call more than once.
func Init(db *sql.DB) error {
	_, err := db.Exec(initSQL)
	if err != nil {
		return fmt.Errorf("error executing schema SQL: %w", err)
	}

	exist, err := checkTable(db, "collections")
	if err != nil {
		return fmt.Errorf("error checking collections table: %w", err)
	}
	if !exist {
		return fmt.Errorf("collections table was not created")
	}

	return nil
}

func checkTable(db *sql.DB, name string) (bool, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`,
		name,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
