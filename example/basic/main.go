package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/hterhoeven/cardlens"
	"github.com/hterhoeven/cardlens/core/query"
	"github.com/hterhoeven/cardlens/helper"
	"github.com/hterhoeven/cardlens/model"
)

const sampleCardText = `Rajesh Kumar
General Manager
The Grand Palace Hotel
Hospitality Division
rajesh.kumar@grandpalace.com
+91 555 123 4567
www.grandpalace.com
45 MG Road, Bangalore, Karnataka 560001`

func main() {
	// Optional .env with CARDLENS_DB_PATH and friends
	_ = godotenv.Load()

	config, err := helper.NewDatabaseConfiguration()
	if err != nil {
		log.Fatalf("Failed to load database configuration: %v", err)
	}

	// Run without OCR; text is imported manually in this example.
	c, err := cardlens.NewCardlens(config, nil)
	if err != nil {
		log.Fatalf("Failed to create cardlens: %v", err)
	}
	defer c.Close()

	// Import a card from pasted text - same classification as OCR output
	fmt.Println("Importing card text...")
	card, err := c.ImportText(sampleCardText)
	if err != nil {
		log.Fatalf("Failed to import card: %v", err)
	}
	fmt.Printf("Card saved with ID: %s\n", card.ID)
	fmt.Printf("Name: %s\n", card.Personal.Name)
	fmt.Printf("Company: %s\n", card.Organization.Company)
	fmt.Printf("Contact methods: %d\n", card.Metadata.ContactMethods)

	// Query the collection
	withEmail := c.CardsFiltered("", query.CategoryHasEmail)
	fmt.Printf("\nCards with an email address: %d\n", len(withEmail))

	matches := c.CardsFiltered("hotel", query.CategoryAll)
	fmt.Printf("Cards matching %q: %d\n", "hotel", len(matches))

	// Rank hotels: the static catalog plus contacts derived from saved cards
	criteria := model.SearchCriteria{
		Location:   "Bangalore",
		Budget:     15000,
		Duration:   3,
		Activities: []string{"spa", "pool"},
	}

	results, err := c.SearchHotels(criteria)
	if err != nil {
		log.Fatalf("Failed to search hotels: %v", err)
	}

	fmt.Printf("\nFound %d hotels:\n", len(results))
	for i, hotel := range results {
		fmt.Printf("\n--- Hotel %d ---\n", i+1)
		fmt.Printf("Name: %s\n", hotel.Name)
		fmt.Printf("Score: %.1f\n", hotel.Score)
		fmt.Printf("Price: %s\n", hotel.PriceLabel())
		fmt.Printf("Source: %s\n", hotel.Source)
	}

	// Keep the top hotel's manager contact
	if len(results) > 0 {
		contact, err := c.SaveHotelContact(results[0])
		if err != nil {
			log.Fatalf("Failed to save hotel contact: %v", err)
		}
		fmt.Printf("\nSaved contact for %s (%s)\n", contact.HotelName, contact.ManagerContact.Name)
	}

	fmt.Println("\nBasic example completed successfully!")
}
