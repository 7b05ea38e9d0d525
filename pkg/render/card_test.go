package render

import (
	"strings"
	"testing"

	"hygiene-store/pkg/models"
)

const testTag = "test-tag-20"

func baseRecord() models.ProductRecord {
	return models.ProductRecord{
		ID:         1,
		Name:       "Citrus Surface Spray",
		Price:      9.99,
		AmazonASIN: "B01ABCDEFG",
		ImageURL:   "https://img.example.com/spray.jpg",
		StarRating: "4.5",
		StockLeft:  5,
	}
}

func TestBuildCard_PriceLine(t *testing.T) {
	tests := []struct {
		name         string
		price        float64
		retailPrice  float64
		wantCurrent  string
		wantOriginal string
	}{
		{"markdown shown", 9.99, 14.99, "$9.99", "$14.99"},
		{"no retail price", 9.99, 0, "$9.99", ""},
		{"retail below current", 9.99, 5.00, "$9.99", ""},
		{"retail equals current", 9.99, 9.99, "$9.99", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := baseRecord()
			rec.Price = tt.price
			rec.RetailPrice = tt.retailPrice

			card := BuildCard(rec, testTag)
			if card.PriceLine.Current != tt.wantCurrent {
				t.Errorf("Current = %q, want %q", card.PriceLine.Current, tt.wantCurrent)
			}
			if card.PriceLine.Original != tt.wantOriginal {
				t.Errorf("Original = %q, want %q", card.PriceLine.Original, tt.wantOriginal)
			}
		})
	}
}

func TestBuildCard_StockLine(t *testing.T) {
	rec := baseRecord()
	rec.StockLeft = 5
	card := BuildCard(rec, testTag)
	if card.StockLine.Text != "Only 5 left in stock!" || !card.StockLine.Alert {
		t.Errorf("in-stock line = %+v, want alert 'Only 5 left in stock!'", card.StockLine)
	}

	rec.StockLeft = 0
	card = BuildCard(rec, testTag)
	if card.StockLine.Text != "Currently out of stock." || card.StockLine.Alert {
		t.Errorf("out-of-stock line = %+v, want neutral 'Currently out of stock.'", card.StockLine)
	}
}

func TestBuildCard_ViewingLine(t *testing.T) {
	rec := baseRecord()
	rec.PeopleViewing = 12
	if got := BuildCard(rec, testTag).ViewingLine; got != "12 people viewing now" {
		t.Errorf("ViewingLine = %q, want '12 people viewing now'", got)
	}

	rec.PeopleViewing = 0
	if got := BuildCard(rec, testTag).ViewingLine; got != "" {
		t.Errorf("ViewingLine = %q, want omitted", got)
	}
}

func TestBuildCard_Badges(t *testing.T) {
	rec := baseRecord()
	card := BuildCard(rec, testTag)
	if len(card.Badges) != 1 || !strings.Contains(card.Badges[0].Label, "Available") {
		t.Errorf("all flags false: badges = %+v, want exactly the generic badge", card.Badges)
	}

	rec.IsVerifiedSeller = true
	rec.IsEcoCertified = true
	card = BuildCard(rec, testTag)
	if len(card.Badges) != 2 {
		t.Fatalf("two flags set: got %d badges, want 2", len(card.Badges))
	}
	for _, b := range card.Badges {
		if strings.Contains(b.Label, "Available") {
			t.Errorf("generic badge rendered alongside named badges: %+v", card.Badges)
		}
	}
}

func TestBuildCard_DisabledActionsWithoutASIN(t *testing.T) {
	rec := baseRecord()
	rec.AmazonASIN = ""
	card := BuildCard(rec, testTag)
	if card.BuyURL != "" || card.ReviewsURL != "" {
		t.Errorf("actions should be disabled without an ASIN: buy=%q reviews=%q", card.BuyURL, card.ReviewsURL)
	}
}

func TestBuildCard_ImagePlaceholder(t *testing.T) {
	rec := baseRecord()
	rec.ImageURL = ""
	card := BuildCard(rec, testTag)
	if card.ImageURL != ErrorPlaceholderImage {
		t.Errorf("ImageURL = %q, want placeholder", card.ImageURL)
	}
}

func TestBuildCard_Rating(t *testing.T) {
	rec := baseRecord()
	rec.StarRating = "N/A"
	card := BuildCard(rec, testTag)
	if card.StarRating != "" {
		t.Errorf("sentinel rating should be hidden, got %q", card.StarRating)
	}

	rec.StarRating = "4.5"
	card = BuildCard(rec, testTag)
	if card.StarRating != "4.5" || !card.RatingGood {
		t.Errorf("rating 4.5: got %q good=%v, want shown and good", card.StarRating, card.RatingGood)
	}

	rec.StarRating = "3.2"
	card = BuildCard(rec, testTag)
	if card.StarRating != "3.2" || card.RatingGood {
		t.Errorf("rating 3.2: got %q good=%v, want shown and not good", card.StarRating, card.RatingGood)
	}
}
