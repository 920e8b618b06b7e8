package hotels

import (
	"math"
	"sort"
	"strings"

	"github.com/hterhoeven/cardlens/model"
)

const (
	// topResults caps the ranked output.
	topResults = 10
	// budgetTolerance lets priced entries exceed the budget by 20% before
	// they are dropped from the ranked path.
	budgetTolerance = 1.2

	ratingWeight       = 20.0
	directContactBonus = 30.0
	budgetWeight       = 20.0
	activityBonus      = 10.0
)

// Engine ranks the static catalog together with entries derived from scanned
// cards against the user's search criteria.
type Engine struct {
	catalog []*model.Hotel
}

// NewEngine creates a ranking engine over the given catalog.
func NewEngine(catalog []*model.Hotel) *Engine {
	return &Engine{catalog: catalog}
}

// Search is the ranked search path. Catalog and derived entries are filtered
// by location and budget (with tolerance), scored, stably sorted by descending
// score and truncated to the top ten. Criteria must be validated by the caller;
// Search assumes a non-empty location.
func (e *Engine) Search(cards []*model.Card, criteria model.SearchCriteria) []*model.Hotel {
	candidates := make([]*model.Hotel, 0, len(e.catalog))
	candidates = append(candidates, e.catalog...)
	candidates = append(candidates, DeriveFromCards(cards)...)

	var results []*model.Hotel
	for _, hotel := range candidates {
		if !locationMatches(hotel, criteria.Location) {
			continue
		}
		if criteria.Budget > 0 && !hotel.PriceOnRequest && hotel.Price > criteria.Budget*budgetTolerance {
			continue
		}

		scored := *hotel
		scored.Score = Score(hotel, criteria)
		results = append(results, &scored)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topResults {
		results = results[:topResults]
	}
	return results
}

// SearchSimple is the degraded fallback path: location match, hard budget
// cutoff on priced catalog entries, rating-only sort. No derived entries and
// no composite scoring.
func (e *Engine) SearchSimple(criteria model.SearchCriteria) []*model.Hotel {
	var results []*model.Hotel
	for _, hotel := range e.catalog {
		if !locationMatches(hotel, criteria.Location) {
			continue
		}
		if criteria.Budget > 0 && !hotel.PriceOnRequest && hotel.Price > criteria.Budget {
			continue
		}
		copied := *hotel
		results = append(results, &copied)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rating > results[j].Rating
	})

	if len(results) > topResults {
		results = results[:topResults]
	}
	return results
}

// Score computes the composite ranking score for one entry:
// rating times 20, a 30 point bonus for direct contacts derived from cards,
// up to 20 points for budget proximity and 10 points per matched activity.
func Score(hotel *model.Hotel, criteria model.SearchCriteria) float64 {
	rating := hotel.Rating
	if rating == 0 {
		rating = DerivedRating
	}
	score := rating * ratingWeight

	if hotel.Source == model.HotelSourceDerived {
		score += directContactBonus
	}

	if criteria.Budget > 0 && !hotel.PriceOnRequest && hotel.Price > 0 {
		budgetDiff := math.Abs(hotel.Price - criteria.Budget)
		maxDiff := criteria.Budget * 0.5
		score += (1 - math.Min(budgetDiff/maxDiff, 1)) * budgetWeight
	}

	score += activityBonus * float64(matchedActivities(hotel, criteria.Activities))

	return score
}

// locationMatches reports whether the entry's location contains the searched
// location. Entries without a location (derived from cards) always match.
func locationMatches(hotel *model.Hotel, location string) bool {
	if hotel.Location == "" {
		return true
	}
	return strings.Contains(strings.ToLower(hotel.Location), strings.ToLower(location))
}

func matchedActivities(hotel *model.Hotel, wanted []string) int {
	count := 0
	for _, want := range wanted {
		for _, activity := range hotel.Activities {
			if strings.Contains(strings.ToLower(activity), strings.ToLower(want)) {
				count++
				break
			}
		}
	}
	return count
}
