package render

import (
	"errors"

	"hygiene-store/pkg/models"
)

// State is the outcome of one list render pass. Every outcome is terminal
// until the next explicit render; there is no automatic retry.
type State int

const (
	StateLoading State = iota
	StatePopulated
	StateEmpty
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePopulated:
		return "populated"
	case StateEmpty:
		return "empty"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Page is the result of one render pass over the whole list.
type Page struct {
	State   State
	Message string
	Cards   []Card
	Records []models.ProductRecord
}

// RenderList turns the fetch outcome into the page view. Cards keep feed
// order; there is no client-side re-sorting. A failed fetch shows the
// plain-language cause and still populates the single built-in sample record
// so the surface is never blank.
func RenderList(records []models.ProductRecord, fetchErr error, affiliateTag string) Page {
	if fetchErr != nil {
		if errors.Is(fetchErr, models.ErrEmptyFeed) {
			return Page{State: StateEmpty, Message: "No products available at the moment."}
		}
		sample := models.SampleProduct()
		return Page{
			State:   StateFailed,
			Message: "Failed to load products: " + fetchErr.Error(),
			Cards:   []Card{BuildCard(sample, affiliateTag)},
			Records: []models.ProductRecord{sample},
		}
	}

	if len(records) == 0 {
		return Page{State: StateEmpty, Message: "No products available at the moment."}
	}

	page := Page{State: StatePopulated, Records: records}
	page.Cards = make([]Card, 0, len(records))
	for _, rec := range records {
		page.Cards = append(page.Cards, BuildCard(rec, affiliateTag))
	}
	return page
}
