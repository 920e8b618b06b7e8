package database

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hterhoeven/cardlens/helper"
	"github.com/hterhoeven/cardlens/model"
	"github.com/hterhoeven/cardlens/sql"
)

// CardsDBHandlerFunctions defines the interface for card repository operations.
type CardsDBHandlerFunctions interface {
	InsertCard(card *model.Card) error
	DeleteCard(id string) error
	DeleteAllCards() error
	SelectAllCards() []*model.Card
}

// CardsDBHandler owns the durable card collection. The collection is held in
// memory in most-recent-first order and persisted as one full snapshot on
// every mutation before the call returns. Mutations are serialized by a
// mutex; the persistence layer has no atomic append, so a read-modify-write
// cycle must never interleave with another.
type CardsDBHandler struct {
	db    *helper.Database
	mu    sync.Mutex
	cards []*model.Card
}

// NewCardsDBHandler creates the handler and loads the persisted collection.
// A missing or corrupt snapshot is treated as an empty collection, not an
// error.
func NewCardsDBHandler(db *helper.Database) (*CardsDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	handler := &CardsDBHandler{db: db}

	cards, err := loadCards(db)
	if err != nil {
		return nil, err
	}
	handler.cards = cards

	db.Logger.Info("Initialized CardsDBHandler", slog.Int("cards", len(cards)))

	return handler, nil
}

func loadCards(db *helper.Database) ([]*model.Card, error) {
	payload, found, err := loadCollection(db, sql.CollectionCards)
	if err != nil {
		return nil, err
	}
	if !found {
		return []*model.Card{}, nil
	}

	var cards []*model.Card
	if err := json.Unmarshal(payload, &cards); err != nil {
		// A corrupt snapshot must not take the whole collection down.
		db.Logger.Warn("Discarding corrupt card collection snapshot", slog.String("error", err.Error()))
		return []*model.Card{}, nil
	}
	if cards == nil {
		cards = []*model.Card{}
	}
	return cards, nil
}

// InsertCard prepends the card to the collection and persists the new
// snapshot. The card must carry an ID; no further shape validation happens
// here.
func (h *CardsDBHandler) InsertCard(card *model.Card) error {
	if card == nil || card.ID == "" {
		return helper.NewError("insert card", fmt.Errorf("card with ID is required"))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	updated := make([]*model.Card, 0, len(h.cards)+1)
	updated = append(updated, card)
	updated = append(updated, h.cards...)

	if err := h.persist(updated); err != nil {
		return err
	}
	h.cards = updated

	h.db.Logger.Info("Inserted card", slog.String("card_id", card.ID), slog.String("name", card.DisplayName()))

	return nil
}

// DeleteCard removes the card with the given ID. Deleting an ID that is not
// in the collection is a no-op, not an error.
func (h *CardsDBHandler) DeleteCard(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	updated := make([]*model.Card, 0, len(h.cards))
	for _, card := range h.cards {
		if card.ID != id {
			updated = append(updated, card)
		}
	}
	if len(updated) == len(h.cards) {
		return nil
	}

	if err := h.persist(updated); err != nil {
		return err
	}
	h.cards = updated

	h.db.Logger.Info("Deleted card", slog.String("card_id", id))

	return nil
}

// DeleteAllCards empties the collection and persists the empty state.
func (h *CardsDBHandler) DeleteAllCards() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	updated := []*model.Card{}
	if err := h.persist(updated); err != nil {
		return err
	}
	h.cards = updated

	h.db.Logger.Info("Deleted all cards")

	return nil
}

// SelectAllCards returns the full collection in most-recent-first order. The
// returned slice is a copy; callers may filter it freely.
func (h *CardsDBHandler) SelectAllCards() []*model.Card {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]*model.Card(nil), h.cards...)
}

func (h *CardsDBHandler) persist(cards []*model.Card) error {
	payload, err := json.Marshal(cards)
	if err != nil {
		return helper.NewError("marshal cards", err)
	}
	return saveCollection(h.db, sql.CollectionCards, payload)
}
