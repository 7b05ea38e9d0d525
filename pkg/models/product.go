package models

import "errors"

// ProductRecord is the canonical product shape every feed payload is
// normalized into. Records live in memory for one render pass and are
// replaced wholesale on the next fetch.
type ProductRecord struct {
	ID               int     `json:"id"`
	Category         string  `json:"category"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Price            float64 `json:"price"`
	RetailPrice      float64 `json:"retail_price"`
	ImageURL         string  `json:"image_url"`
	AmazonASIN       string  `json:"amazon_asin"`
	VideoURL         string  `json:"video_url,omitempty"`
	StarRating       string  `json:"star_rating"`
	StockLeft        int     `json:"stock_left"`
	PeopleViewing    int     `json:"people_viewing"`
	IsVerifiedSeller bool    `json:"is_verified_seller"`
	IsBestSeller     bool    `json:"is_best_seller"`
	IsEcoCertified   bool    `json:"is_eco_certified"`
}

// RawPayload is one undecoded feed entry. Key names differ between the two
// schemes seen in the wild, so the payload stays loose until normalized.
type RawPayload map[string]any

// RatingUnknown is the sentinel meaning "do not display a rating".
const RatingUnknown = "N/A"

var ErrEmptyFeed = errors.New("feed returned no products")

// HasMarkdown reports whether a struck-through original price should be
// shown next to the current one.
func (p ProductRecord) HasMarkdown() bool {
	return p.RetailPrice > 0 && p.RetailPrice > p.Price
}

// SampleProduct returns the built-in record substituted whenever the feed
// cannot be used. Always showing something is a product decision, not error
// masking.
func SampleProduct() ProductRecord {
	return ProductRecord{
		ID:            999,
		Category:      "Sample Category",
		Name:          "Sample Product (Fallback)",
		Description:   "This is a sample product description used when the product feed is unavailable or empty. It shows how a product card looks.",
		Price:         9.99,
		ImageURL:      "https://via.placeholder.com/300x200?text=Sample+Product",
		AmazonASIN:    "B000000000",
		StarRating:    "4.5",
		StockLeft:     5,
		PeopleViewing: 15,
	}
}
