package chat

import (
	"strings"
	"unicode"
)

// Responder matches user messages against a fixed keyword table, the same
// scripted flow the store chat widget follows. Matching is on whole words so
// "shipping" does not trip the "hi" greeting.
type Responder struct {
	rules    []rule
	fallback string
}

type rule struct {
	keywords []string
	reply    string
}

func NewResponder() *Responder {
	return &Responder{
		rules: []rule{
			{
				keywords: []string{"hello", "hi", "hey"},
				reply:    "Hello! How can I assist you with our hygiene and cleaning products today?",
			},
			{
				keywords: []string{"recommend", "suggest"},
				reply:    "I recommend checking out our top-rated disinfectants and hand sanitizers! You can find them in the product list above.",
			},
			{
				keywords: []string{"price", "cost"},
				reply:    "Prices vary by product. Please click on a product card to see its details and current pricing sourced from Amazon.",
			},
			{
				keywords: []string{"buy", "purchase", "order"},
				reply:    "You can purchase products by clicking the \"Pay with Amazon\" or \"View on Amazon\" buttons on each product card. This will take you to Amazon to complete your purchase.",
			},
			{
				keywords: []string{"shipping"},
				reply:    "Shipping is handled by Amazon. Details will be available on the Amazon product page.",
			},
			{
				keywords: []string{"contact", "support", "help"},
				reply:    "I am an automated assistant. If you need further help, please refer to the product details on Amazon or check the site footer for contact information.",
			},
		},
		fallback: "Sorry, I am still learning. Please ask about specific products, categories, or the buying process.",
	}
}

// Reply returns the canned response for the first matching rule, in table
// order, or the fallback.
func (r *Responder) Reply(message string) string {
	words := tokenize(message)
	for _, rule := range r.rules {
		for _, kw := range rule.keywords {
			if words[kw] {
				return rule.reply
			}
		}
	}
	return r.fallback
}

func tokenize(message string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	words := make(map[string]bool, len(fields))
	for _, f := range fields {
		words[f] = true
	}
	return words
}
