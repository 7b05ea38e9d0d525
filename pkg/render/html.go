package render

import (
	"html/template"
	"io"
)

// The storefront page is rendered server-side from the Page view model. The
// dynamic surfaces (ads, chat, visitor count, overlay) refresh through the
// /api endpoints; the markup only carries their containers.
var pageTmpl = template.Must(template.New("storefront").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Hygiene &amp; Cleaning Products Store</title>
</head>
<body>
<header>
  <h1>Hygiene &amp; Cleaning Products</h1>
  <div id="top-ad" class="ad-slot"></div>
</header>
<main>
{{if eq .State 0}}
  <div id="loading-indicator" role="status">Loading products…</div>
{{else}}
  {{if .Message}}<p id="list-message" class="state-{{.State}}">{{.Message}}</p>{{end}}
  {{if .Cards}}
  <div id="product-slider">
    {{range .Cards}}
    <div class="product-card" data-asin="{{.ASIN}}">
      <img src="{{.ImageURL}}" alt="{{.Name}}" loading="lazy"
           onerror="this.onerror=null;this.src='https://via.placeholder.com/300x200?text=Image+Unavailable'">
      <h2>{{.Name}}</h2>
      <p class="description">{{.Description}}</p>
      <p class="price">
        {{if .PriceLine.Original}}<s class="retail-price">Reg. Price: {{.PriceLine.Original}}</s> {{end}}{{.PriceLine.Current}}
      </p>
      <p class="stock {{if .StockLine.Alert}}alert{{else}}neutral{{end}}">{{.StockLine.Text}}</p>
      {{if .ViewingLine}}<p class="viewing">{{.ViewingLine}}</p>{{end}}
      <div class="badges">
        {{range .Badges}}<span class="badge" title="{{.Tooltip}}" tabindex="0">{{.Label}}</span>{{end}}
      </div>
      <div class="actions">
        {{if .BuyURL}}
        <a class="buy" href="{{.BuyURL}}" target="_blank" rel="noopener noreferrer">🔍 View on Amazon</a>
        {{else}}
        <button class="buy" disabled>Unavailable</button>
        {{end}}
        {{if .ReviewsURL}}
        <a class="reviews {{if .RatingGood}}rating-good{{end}}" href="{{.ReviewsURL}}" target="_blank" rel="noopener noreferrer">
          {{if .StarRating}}⭐ {{.StarRating}}{{else}}Reviews{{end}}
        </a>
        {{end}}
      </div>
    </div>
    {{end}}
  </div>
  {{end}}
{{end}}
</main>
<div id="mid-ad" class="ad-slot"></div>
<section id="subscription">
  <form id="subscription-form" method="post" action="/api/subscribe">
    <input type="email" id="subscription-email" name="email" placeholder="Email" required>
    <input type="tel" id="subscription-whatsapp" name="whatsapp" placeholder="WhatsApp number" required>
    <label><input type="checkbox" id="subscription-terms" name="terms"> I agree to the terms</label>
    <button type="submit">Subscribe for early deals</button>
  </form>
  <p id="subscription-message" hidden></p>
</section>
<footer>
  <p id="bookmark-note">To install, use the "Add to Home Screen" option in your browser menu.</p>
  <div id="visitor-bubble"></div>
  <div id="chatbot" hidden></div>
</footer>
</body>
</html>
`))

// HTML writes the rendered storefront page for this render pass.
func (p Page) HTML(w io.Writer) error {
	return pageTmpl.Execute(w, p)
}
