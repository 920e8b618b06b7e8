package database

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hterhoeven/cardlens/helper"
	"github.com/hterhoeven/cardlens/model"
	"github.com/hterhoeven/cardlens/sql"
)

// newTestDatabase opens a fresh per-test sqlite database with the schema
// applied. The same configuration stays set for the whole test, so reopening
// yields the same file.
func newTestDatabase(t *testing.T) *helper.Database {
	t.Helper()
	helper.SetTestDatabaseConfigEnvs(t)
	return openTestDatabase(t)
}

// openTestDatabase opens the currently configured database file again,
// simulating a restart.
func openTestDatabase(t *testing.T) *helper.Database {
	t.Helper()

	config, err := helper.NewDatabaseConfiguration()
	require.NoError(t, err, "Expected the test configuration to load")

	logger := slog.New(helper.NewPrettyHandler(io.Discard, helper.PrettyHandlerOptions{}))

	db, err := helper.NewDatabase("cardlens_test", config, logger)
	require.NoError(t, err, "Expected the test database to open")
	t.Cleanup(func() { db.Instance.Close() })

	require.NoError(t, sql.Init(db.Instance), "Expected the schema to initialize")

	return db
}

func testCard(id, name string) *model.Card {
	return &model.Card{
		ID:        id,
		RawText:   name,
		Personal:  model.Personal{Name: name},
		Contact:   model.Contact{Emails: []string{}, Phones: []string{}, URLs: []string{}, Addresses: []string{}},
		CreatedAt: time.Now(),
	}
}

func TestNewCardsDBHandler(t *testing.T) {
	t.Run("Create handler with empty database", func(t *testing.T) {
		db := newTestDatabase(t)

		handler, err := NewCardsDBHandler(db)

		require.NoError(t, err, "Expected handler creation to succeed")
		assert.Empty(t, handler.SelectAllCards(), "Expected an empty collection")
	})

	t.Run("Create handler with nil database fails", func(t *testing.T) {
		handler, err := NewCardsDBHandler(nil)

		assert.Error(t, err, "Expected an error for a nil database")
		assert.Nil(t, handler, "Expected no handler")
	})

	t.Run("Create handler tolerates a corrupt snapshot", func(t *testing.T) {
		db := newTestDatabase(t)
		require.NoError(t, saveCollection(db, sql.CollectionCards, []byte("not json")),
			"Expected the corrupt payload to be written")

		handler, err := NewCardsDBHandler(db)

		require.NoError(t, err, "Expected a corrupt snapshot to not fail handler creation")
		assert.Empty(t, handler.SelectAllCards(), "Expected the corrupt collection to load as empty")
	})
}

func TestCardsDBHandlerInsertCard(t *testing.T) {
	t.Run("Insert prepends to the collection", func(t *testing.T) {
		db := newTestDatabase(t)
		handler, err := NewCardsDBHandler(db)
		require.NoError(t, err, "Expected handler creation to succeed")

		require.NoError(t, handler.InsertCard(testCard("c1", "First")), "Expected the first insert to succeed")
		require.NoError(t, handler.InsertCard(testCard("c2", "Second")), "Expected the second insert to succeed")

		cards := handler.SelectAllCards()
		require.Len(t, cards, 2, "Expected both cards")
		assert.Equal(t, "c2", cards[0].ID, "Expected the newest card first")
		assert.Equal(t, "c1", cards[1].ID, "Expected the older card second")
	})

	t.Run("Insert without an ID fails", func(t *testing.T) {
		db := newTestDatabase(t)
		handler, err := NewCardsDBHandler(db)
		require.NoError(t, err, "Expected handler creation to succeed")

		assert.Error(t, handler.InsertCard(&model.Card{}), "Expected a card without ID to be rejected")
		assert.Error(t, handler.InsertCard(nil), "Expected a nil card to be rejected")
	})

	t.Run("Insert survives a handler restart", func(t *testing.T) {
		db := newTestDatabase(t)
		handler, err := NewCardsDBHandler(db)
		require.NoError(t, err, "Expected handler creation to succeed")
		require.NoError(t, handler.InsertCard(testCard("c1", "Persistent")), "Expected the insert to succeed")

		reopened, err := NewCardsDBHandler(openTestDatabase(t))
		require.NoError(t, err, "Expected the reopened handler to load")

		cards := reopened.SelectAllCards()
		require.Len(t, cards, 1, "Expected the persisted card after restart")
		assert.Equal(t, "Persistent", cards[0].Personal.Name, "Expected the card content to round-trip")
	})
}

func TestCardsDBHandlerDeleteCard(t *testing.T) {
	t.Run("Delete removes the card", func(t *testing.T) {
		db := newTestDatabase(t)
		handler, err := NewCardsDBHandler(db)
		require.NoError(t, err, "Expected handler creation to succeed")
		require.NoError(t, handler.InsertCard(testCard("c1", "First")), "Expected the insert to succeed")
		require.NoError(t, handler.InsertCard(testCard("c2", "Second")), "Expected the insert to succeed")

		require.NoError(t, handler.DeleteCard("c1"), "Expected the delete to succeed")

		cards := handler.SelectAllCards()
		require.Len(t, cards, 1, "Expected one remaining card")
		assert.Equal(t, "c2", cards[0].ID, "Expected the other card to remain")
	})

	t.Run("Delete of an unknown ID is a no-op", func(t *testing.T) {
		db := newTestDatabase(t)
		handler, err := NewCardsDBHandler(db)
		require.NoError(t, err, "Expected handler creation to succeed")
		require.NoError(t, handler.InsertCard(testCard("c1", "First")), "Expected the insert to succeed")

		assert.NoError(t, handler.DeleteCard("missing"), "Expected no error for an unknown ID")
		assert.Len(t, handler.SelectAllCards(), 1, "Expected the collection unchanged")
	})
}

func TestCardsDBHandlerDeleteAllCards(t *testing.T) {
	t.Run("DeleteAll empties the collection durably", func(t *testing.T) {
		db := newTestDatabase(t)
		handler, err := NewCardsDBHandler(db)
		require.NoError(t, err, "Expected handler creation to succeed")
		require.NoError(t, handler.InsertCard(testCard("c1", "First")), "Expected the insert to succeed")
		require.NoError(t, handler.InsertCard(testCard("c2", "Second")), "Expected the insert to succeed")

		require.NoError(t, handler.DeleteAllCards(), "Expected delete all to succeed")
		assert.Empty(t, handler.SelectAllCards(), "Expected an empty collection")

		reopened, err := NewCardsDBHandler(openTestDatabase(t))
		require.NoError(t, err, "Expected the reopened handler to load")
		assert.Empty(t, reopened.SelectAllCards(), "Expected the emptied collection to persist")
	})
}

func TestCardsDBHandlerSelectAllCards(t *testing.T) {
	t.Run("SelectAll returns a copy", func(t *testing.T) {
		db := newTestDatabase(t)
		handler, err := NewCardsDBHandler(db)
		require.NoError(t, err, "Expected handler creation to succeed")
		require.NoError(t, handler.InsertCard(testCard("c1", "First")), "Expected the insert to succeed")

		cards := handler.SelectAllCards()
		cards[0] = nil

		again := handler.SelectAllCards()
		require.Len(t, again, 1, "Expected the collection unchanged")
		assert.NotNil(t, again[0], "Expected mutating the returned slice to not affect the handler")
	})
}
