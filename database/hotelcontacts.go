package database

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hterhoeven/cardlens/helper"
	"github.com/hterhoeven/cardlens/model"
	"github.com/hterhoeven/cardlens/sql"
)

// HotelContactsDBHandlerFunctions defines the interface for saved hotel
// contact operations.
type HotelContactsDBHandlerFunctions interface {
	SaveContact(hotel *model.Hotel) (*model.SavedHotelContact, error)
	SelectAllContacts() []*model.SavedHotelContact
	DeleteAllContacts() error
}

// HotelContactsDBHandler owns the collection of hotel manager contacts the
// user chose to keep. Same persistence contract as the card repository: full
// snapshot written synchronously on every mutation, mutex-serialized.
type HotelContactsDBHandler struct {
	db       *helper.Database
	mu       sync.Mutex
	contacts []*model.SavedHotelContact
}

// NewHotelContactsDBHandler creates the handler and loads the persisted
// collection, tolerating missing or corrupt snapshots.
func NewHotelContactsDBHandler(db *helper.Database) (*HotelContactsDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	handler := &HotelContactsDBHandler{db: db}

	payload, found, err := loadCollection(db, sql.CollectionHotelContacts)
	if err != nil {
		return nil, err
	}
	if found {
		if err := json.Unmarshal(payload, &handler.contacts); err != nil {
			db.Logger.Warn("Discarding corrupt hotel contact snapshot", slog.String("error", err.Error()))
			handler.contacts = nil
		}
	}
	if handler.contacts == nil {
		handler.contacts = []*model.SavedHotelContact{}
	}

	db.Logger.Info("Initialized HotelContactsDBHandler", slog.Int("contacts", len(handler.contacts)))

	return handler, nil
}

// SaveContact appends the hotel's manager contact to the collection and
// persists the new snapshot. Contacts keep insertion order.
func (h *HotelContactsDBHandler) SaveContact(hotel *model.Hotel) (*model.SavedHotelContact, error) {
	if hotel == nil {
		return nil, helper.NewError("save hotel contact", fmt.Errorf("hotel is required"))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	contact := &model.SavedHotelContact{
		ID:             model.NewRecordID(),
		HotelID:        hotel.ID,
		HotelName:      hotel.Name,
		ManagerContact: hotel.ManagerContact,
		SavedAt:        time.Now(),
	}

	updated := append(append([]*model.SavedHotelContact(nil), h.contacts...), contact)

	payload, err := json.Marshal(updated)
	if err != nil {
		return nil, helper.NewError("marshal hotel contacts", err)
	}
	if err := saveCollection(h.db, sql.CollectionHotelContacts, payload); err != nil {
		return nil, err
	}
	h.contacts = updated

	h.db.Logger.Info("Saved hotel contact", slog.String("hotel", hotel.Name))

	return contact, nil
}

// SelectAllContacts returns a copy of the saved contacts in insertion order.
func (h *HotelContactsDBHandler) SelectAllContacts() []*model.SavedHotelContact {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]*model.SavedHotelContact(nil), h.contacts...)
}

// DeleteAllContacts empties the collection and persists the empty state.
func (h *HotelContactsDBHandler) DeleteAllContacts() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	updated := []*model.SavedHotelContact{}
	payload, err := json.Marshal(updated)
	if err != nil {
		return helper.NewError("marshal hotel contacts", err)
	}
	if err := saveCollection(h.db, sql.CollectionHotelContacts, payload); err != nil {
		return err
	}
	h.contacts = updated

	h.db.Logger.Info("Deleted all hotel contacts")

	return nil
}
