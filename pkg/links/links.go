package links

import "net/url"

const (
	productBase = "https://www.amazon.com/dp/"
	reviewsBase = "https://www.amazon.com/product-reviews/"
)

// Buy returns the affiliate-tagged product URL, or "" when the ASIN is
// missing so the caller disables the action instead of navigating to a
// malformed URL.
func Buy(asin, affiliateTag string) string {
	if asin == "" {
		return ""
	}
	u := productBase + url.PathEscape(asin)
	if affiliateTag != "" {
		u += "?tag=" + url.QueryEscape(affiliateTag)
	}
	return u
}

// Reviews returns the Amazon reviews URL, or "" when the ASIN is missing.
func Reviews(asin string) string {
	if asin == "" {
		return ""
	}
	return reviewsBase + url.PathEscape(asin)
}
