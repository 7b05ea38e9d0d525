package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"hygiene-store/pkg/models"
)

// The feed arrives in one of two key schemes: the spreadsheet export uses
// display labels ("Product ID", "Price ($)"), the newer script endpoint uses
// camel-case keys ("productId", "productPrice"). Both normalize to the same
// canonical record; a payload matching neither scheme yields all defaults.

var labelKeys = []string{"Product ID", "Product Name", "Price ($)"}
var camelKeys = []string{"productId", "productName", "productPrice"}

var digitRun = regexp.MustCompile(`\d+`)

// Normalize maps one raw payload onto the canonical record. It is total:
// every coercion failure falls back to the field default, never an error.
func Normalize(raw models.RawPayload) models.ProductRecord {
	switch {
	case hasAnyKey(raw, labelKeys):
		return fromLabels(raw)
	case hasAnyKey(raw, camelKeys):
		return fromCamel(raw)
	default:
		return defaults()
	}
}

// NormalizeAll maps a fetched batch, preserving feed order.
func NormalizeAll(raws []models.RawPayload) []models.ProductRecord {
	records := make([]models.ProductRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, Normalize(raw))
	}
	return records
}

func defaults() models.ProductRecord {
	return models.ProductRecord{StarRating: models.RatingUnknown}
}

func fromLabels(raw models.RawPayload) models.ProductRecord {
	return models.ProductRecord{
		ID:               asInt(raw["Product ID"]),
		Category:         asString(raw["Category"]),
		Name:             asString(raw["Product Name"]),
		Description:      asString(raw["Description"]),
		Price:            asPrice(raw["Price ($)"]),
		RetailPrice:      asPrice(raw["Retail Price ($)"]),
		ImageURL:         asString(raw["Image URL"]),
		AmazonASIN:       asString(raw["Amazon ASIN"]),
		VideoURL:         asString(raw["Video URL"]),
		StarRating:       asRating(raw["Star Rating"]),
		StockLeft:        asInt(raw["Stock Left"]),
		PeopleViewing:    asInt(raw["People Viewing"]),
		IsVerifiedSeller: asBool(raw["Is Verified Seller"]),
		IsBestSeller:     asBool(raw["Is Best Seller"]),
		IsEcoCertified:   asBool(raw["Is Eco Certified"]),
	}
}

func fromCamel(raw models.RawPayload) models.ProductRecord {
	badge := asString(raw["productBadge"])
	return models.ProductRecord{
		ID:          asInt(raw["productId"]),
		Category:    asString(raw["productCategory"]),
		Name:        asString(raw["productName"]),
		Description: asString(raw["productDescription"]),
		Price:       asPrice(raw["productPrice"]),
		RetailPrice: asPrice(raw["productPriceOld"]),
		ImageURL:    asString(raw["productImageUrl"]),
		AmazonASIN:  asString(raw["productAsin"]),
		VideoURL:    asString(raw["productVideoUrl"]),
		StarRating:  asRating(raw["productRating"]),
		// Stock arrives inside urgency copy, e.g. "Only 5 left".
		StockLeft:        firstDigits(asString(raw["productFomoText"])),
		PeopleViewing:    asInt(raw["peopleViewing"]),
		IsVerifiedSeller: badge == "Verified Seller",
		IsBestSeller:     badge == "Best Seller",
		IsEcoCertified:   badge == "Eco-Friendly",
	}
}

func hasAnyKey(raw models.RawPayload, keys []string) bool {
	for _, k := range keys {
		if _, ok := raw[k]; ok {
			return true
		}
	}
	return false
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asPrice coerces a price-ish value. Prices are never negative.
func asPrice(v any) float64 {
	f := asFloat(v)
	if f < 0 {
		return 0
	}
	return f
}

func asFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(val), "$"))
		s = strings.ReplaceAll(s, ",", ".")
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return 0
}

func asInt(v any) int {
	switch val := v.(type) {
	case float64:
		if val < 0 {
			return 0
		}
		return int(val)
	case int:
		if val < 0 {
			return 0
		}
		return val
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil && n >= 0 {
			return n
		}
	}
	return 0
}

func asBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		return err == nil && b
	}
	return false
}

// asRating keeps textual ratings as-is and renders numeric ones the way the
// feed writes them ("4.5"). Absent or blank means unknown.
func asRating(v any) string {
	switch val := v.(type) {
	case string:
		if s := strings.TrimSpace(val); s != "" {
			return s
		}
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	}
	return models.RatingUnknown
}

// firstDigits pulls the first run of digits out of free text, 0 if none.
func firstDigits(s string) int {
	match := digitRun.FindString(s)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return n
}
