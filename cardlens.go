package cardlens

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hterhoeven/cardlens/core/classify"
	"github.com/hterhoeven/cardlens/core/hotels"
	"github.com/hterhoeven/cardlens/core/query"
	"github.com/hterhoeven/cardlens/core/scanflow"
	"github.com/hterhoeven/cardlens/database"
	"github.com/hterhoeven/cardlens/helper"
	"github.com/hterhoeven/cardlens/model"
	"github.com/hterhoeven/cardlens/ocr"
	loadSql "github.com/hterhoeven/cardlens/sql"
)

// Cardlens provides a unified interface to the card repository, the query
// engine, the hotel ranking engine and the OCR adapter.
type Cardlens struct {
	DB            *helper.Database
	Cards         *database.CardsDBHandler
	HotelContacts *database.HotelContactsDBHandler
	Hotels        *hotels.Engine
	Recognizer    ocr.Recognizer
	// Logging
	log *slog.Logger
}

// NewCardlens creates a new Cardlens instance with all handlers initialized.
// The recognizer is an injectable collaborator constructed once and passed by
// handle; pass nil to run without OCR (manual entry only).
func NewCardlens(config *helper.DatabaseConfiguration, recognizer ocr.Recognizer) (*Cardlens, error) {
	// Logger
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	// Initialize database
	db, err := helper.NewDatabase("cardlens", config, logger)
	if err != nil {
		return nil, helper.NewError("open database", err)
	}
	err = loadSql.Init(db.Instance)
	if err != nil {
		return nil, helper.NewError("initialize database schema", err)
	}

	cards, err := database.NewCardsDBHandler(db)
	if err != nil {
		return nil, helper.NewError("create cards handler", err)
	}

	hotelContacts, err := database.NewHotelContactsDBHandler(db)
	if err != nil {
		return nil, helper.NewError("create hotel contacts handler", err)
	}

	catalog, err := hotels.LoadCatalog()
	if err != nil {
		return nil, helper.NewError("load hotel catalog", err)
	}

	return &Cardlens{
		DB:            db,
		Cards:         cards,
		HotelContacts: hotelContacts,
		Hotels:        hotels.NewEngine(catalog),
		Recognizer:    recognizer,
		log:           logger,
	}, nil
}

// Close closes the database connection.
func (c *Cardlens) Close() error {
	if c.DB != nil && c.DB.Instance != nil {
		return c.DB.Instance.Close()
	}
	return nil
}

// NewScanFlow starts a new capture flow for one card. The returned flow must
// be driven through its transitions; pass the finished card to SaveCard.
func (c *Cardlens) NewScanFlow() *scanflow.Flow {
	return scanflow.NewFlow(c.Recognizer)
}

// SaveCard persists a finished card at the head of the collection.
func (c *Cardlens) SaveCard(card *model.Card) error {
	return c.Cards.InsertCard(card)
}

// ImportText classifies manually entered text and saves the resulting card.
// The text goes through the same classification as OCR output, in the front
// slot. This is the fallback when recognition is unavailable.
func (c *Cardlens) ImportText(text string) (*model.Card, error) {
	if strings.TrimSpace(text) == "" {
		return nil, helper.NewError("import text", fmt.Errorf("text is required"))
	}

	result := classify.Classify(text, "")
	card := &model.Card{
		ID:           model.NewRecordID(),
		RawText:      result.RawText,
		Personal:     result.Personal,
		Organization: result.Organization,
		Contact:      result.Contact,
		Metadata:     result.Metadata,
		CreatedAt:    time.Now(),
	}

	if err := c.Cards.InsertCard(card); err != nil {
		return nil, err
	}

	c.log.Info("Imported card from manual text",
		slog.String("card_id", card.ID),
		slog.Int("contact_methods", card.Metadata.ContactMethods))

	return card, nil
}

// CardsFiltered returns the collection narrowed by a free-text search and a
// category filter, in stable most-recent-first order.
func (c *Cardlens) CardsFiltered(searchText string, category query.Category) []*model.Card {
	return query.Filter(c.Cards.SelectAllCards(), searchText, category)
}

// AllCards returns the full collection in most-recent-first order.
func (c *Cardlens) AllCards() []*model.Card {
	return c.Cards.SelectAllCards()
}

// DeleteCard removes one card by ID; unknown IDs are a no-op.
func (c *Cardlens) DeleteCard(id string) error {
	return c.Cards.DeleteCard(id)
}

// DeleteAllCards empties the card collection.
func (c *Cardlens) DeleteAllCards() error {
	return c.Cards.DeleteAllCards()
}

// SearchHotels ranks the static catalog merged with hospitality contacts
// derived from the saved cards. Criteria are validated before the engine
// runs; a missing location is an input error.
func (c *Cardlens) SearchHotels(criteria model.SearchCriteria) ([]*model.Hotel, error) {
	if err := criteria.Validate(); err != nil {
		return nil, helper.NewError("validate search criteria", err)
	}

	results := c.Hotels.Search(c.Cards.SelectAllCards(), criteria)

	c.log.Info("Ranked hotels",
		slog.String("location", criteria.Location),
		slog.Int("results", len(results)))

	return results, nil
}

// SearchHotelsSimple is the degraded fallback search: catalog only, hard
// budget cutoff, rating-only ordering.
func (c *Cardlens) SearchHotelsSimple(criteria model.SearchCriteria) ([]*model.Hotel, error) {
	if err := criteria.Validate(); err != nil {
		return nil, helper.NewError("validate search criteria", err)
	}
	return c.Hotels.SearchSimple(criteria), nil
}

// SaveHotelContact keeps a hotel's manager contact in its own collection.
func (c *Cardlens) SaveHotelContact(hotel *model.Hotel) (*model.SavedHotelContact, error) {
	return c.HotelContacts.SaveContact(hotel)
}

// SavedHotelContacts returns all kept hotel contacts in insertion order.
func (c *Cardlens) SavedHotelContacts() []*model.SavedHotelContact {
	return c.HotelContacts.SelectAllContacts()
}
