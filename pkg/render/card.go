package render

import (
	"fmt"
	"strconv"

	"hygiene-store/pkg/links"
	"hygiene-store/pkg/models"
)

// ErrorPlaceholderImage is shown whenever a product image is missing or
// fails to load.
const ErrorPlaceholderImage = "https://via.placeholder.com/300x200?text=Image+Unavailable"

// Badge is one trust indicator on the card, with its hover tooltip.
type Badge struct {
	Label   string `json:"label"`
	Tooltip string `json:"tooltip"`
}

// PriceLine is the single price line of a card. Original is empty unless the
// markdown condition holds (retail price present and above current price).
type PriceLine struct {
	Current  string `json:"current"`
	Original string `json:"original,omitempty"`
}

// StockLine is always rendered: urgency copy in alert styling while stock
// remains, neutral out-of-stock copy at zero.
type StockLine struct {
	Text  string `json:"text"`
	Alert bool   `json:"alert"`
}

// Card is the self-contained visual unit for one product record. Building a
// card has no side effects; navigation stays with the caller through the
// BuyURL/ReviewsURL values, which are empty when the action is disabled.
type Card struct {
	ASIN        string    `json:"asin"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	PriceLine   PriceLine `json:"price_line"`
	StockLine   StockLine `json:"stock_line"`
	ViewingLine string    `json:"viewing_line,omitempty"`
	Badges      []Badge   `json:"badges"`
	StarRating  string    `json:"star_rating,omitempty"`
	RatingGood  bool      `json:"rating_good,omitempty"`
	BuyURL      string    `json:"buy_url,omitempty"`
	ReviewsURL  string    `json:"reviews_url,omitempty"`
}

// BuildCard is a pure view-model constructor for one record.
func BuildCard(p models.ProductRecord, affiliateTag string) Card {
	c := Card{
		ASIN:        p.AmazonASIN,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		BuyURL:      links.Buy(p.AmazonASIN, affiliateTag),
		ReviewsURL:  links.Reviews(p.AmazonASIN),
	}
	if c.ImageURL == "" {
		c.ImageURL = ErrorPlaceholderImage
	}

	c.PriceLine.Current = formatPrice(p.Price)
	if p.HasMarkdown() {
		c.PriceLine.Original = formatPrice(p.RetailPrice)
	}

	if p.StockLeft > 0 {
		c.StockLine = StockLine{
			Text:  fmt.Sprintf("Only %d left in stock!", p.StockLeft),
			Alert: true,
		}
	} else {
		c.StockLine = StockLine{Text: "Currently out of stock."}
	}

	if p.PeopleViewing > 0 {
		c.ViewingLine = fmt.Sprintf("%d people viewing now", p.PeopleViewing)
	}

	if p.IsVerifiedSeller {
		c.Badges = append(c.Badges, Badge{"✅ Verified Seller", "This seller is verified and trusted."})
	}
	if p.IsBestSeller {
		c.Badges = append(c.Badges, Badge{"🌟 Best Seller", "This product is a best seller."})
	}
	if p.IsEcoCertified {
		c.Badges = append(c.Badges, Badge{"🌱 Eco-Certified", "This product is certified eco-friendly."})
	}
	// The badge row is never empty.
	if len(c.Badges) == 0 {
		c.Badges = append(c.Badges, Badge{"🛍️ Available", "Product is available."})
	}

	if p.StarRating != "" && p.StarRating != models.RatingUnknown {
		c.StarRating = p.StarRating
		if val, err := strconv.ParseFloat(p.StarRating, 64); err == nil && val >= 4.0 {
			c.RatingGood = true
		}
	}

	return c
}

func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
