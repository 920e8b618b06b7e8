package query

import (
	"strings"

	"github.com/hterhoeven/cardlens/model"
)

// Category is a named predicate narrowing a card collection for display.
type Category string

const (
	// CategoryAll applies no category filter.
	CategoryAll Category = "all"
	// CategoryRecent keeps the first five cards of the current order.
	CategoryRecent Category = "recent"
	// CategoryHasEmail keeps cards with at least one email.
	CategoryHasEmail Category = "hasEmail"
	// CategoryHasPhone keeps cards with at least one phone number.
	CategoryHasPhone Category = "hasPhone"
	// CategoryHasWebsite keeps cards with at least one URL.
	CategoryHasWebsite Category = "hasWebsite"
	// CategoryOrganized keeps cards where a name or company was extracted.
	CategoryOrganized Category = "organized"
)

const recentLimit = 5

// Filter returns the subset of cards matching the search text and category.
// Search narrows first, then the category narrows the result further. The
// output order is always a stable subsequence of the input order; CategoryRecent
// truncates without reordering. Unknown categories behave like CategoryAll.
func Filter(cards []*model.Card, searchText string, category Category) []*model.Card {
	filtered := cards

	if search := strings.ToLower(strings.TrimSpace(searchText)); search != "" {
		matched := make([]*model.Card, 0, len(filtered))
		for _, card := range filtered {
			if strings.Contains(card.SearchableText(), search) {
				matched = append(matched, card)
			}
		}
		filtered = matched
	}

	switch category {
	case CategoryRecent:
		if len(filtered) > recentLimit {
			filtered = filtered[:recentLimit]
		}
	case CategoryHasEmail:
		filtered = keep(filtered, (*model.Card).HasEmail)
	case CategoryHasPhone:
		filtered = keep(filtered, (*model.Card).HasPhone)
	case CategoryHasWebsite:
		filtered = keep(filtered, (*model.Card).HasWebsite)
	case CategoryOrganized:
		filtered = keep(filtered, (*model.Card).IsOrganized)
	}

	return filtered
}

func keep(cards []*model.Card, predicate func(*model.Card) bool) []*model.Card {
	matched := make([]*model.Card, 0, len(cards))
	for _, card := range cards {
		if predicate(card) {
			matched = append(matched, card)
		}
	}
	return matched
}
