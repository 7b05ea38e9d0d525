package detail

import (
	"errors"
	"fmt"
	"sync"

	"hygiene-store/pkg/models"
	"hygiene-store/pkg/render"
)

// ErrVideoPlaying is returned when an open is suppressed because a video is
// already playing somewhere on the surface.
var ErrVideoPlaying = errors.New("a video is already playing")

// DefaultVideoID is the embeddable promotional video used when a record has
// no video of its own.
const DefaultVideoID = "dQw4w9WgXcQ"

// View is the expanded overlay for one record: the embedded video first,
// then the details region, revealed once the video completes or errors.
type View struct {
	ASIN           string           `json:"asin"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	ImageURL       string           `json:"image_url"`
	VideoURL       string           `json:"video_url"`
	PriceLine      render.PriceLine `json:"price_line"`
	StockLine      render.StockLine `json:"stock_line"`
	ViewingLine    string           `json:"viewing_line,omitempty"`
	BuyURL         string           `json:"buy_url,omitempty"`
	DetailsVisible bool             `json:"details_visible"`
}

// Overlay owns the detail view and the single-flight "video playing" flag.
// The flag is component state, guarded here, never a free global.
type Overlay struct {
	mu             sync.Mutex
	playing        bool
	current        *View
	defaultVideoID string
}

func NewOverlay(defaultVideoID string) *Overlay {
	if defaultVideoID == "" {
		defaultVideoID = DefaultVideoID
	}
	return &Overlay{defaultVideoID: defaultVideoID}
}

// Open replaces the overlay content with the expanded view for the record.
// At most one "playing" video may exist across the surface, so opening while
// a video plays is suppressed with ErrVideoPlaying.
func (o *Overlay) Open(p models.ProductRecord, affiliateTag string) (View, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.playing {
		return View{}, ErrVideoPlaying
	}

	card := render.BuildCard(p, affiliateTag)
	videoURL := p.VideoURL
	if videoURL == "" {
		videoURL = fmt.Sprintf("https://www.youtube.com/embed/%s?enablejsapi=1", o.defaultVideoID)
	}

	v := View{
		ASIN:        p.AmazonASIN,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    card.ImageURL,
		VideoURL:    videoURL,
		PriceLine:   card.PriceLine,
		StockLine:   card.StockLine,
		ViewingLine: card.ViewingLine,
		BuyURL:      card.BuyURL,
	}
	o.current = &v
	return v, nil
}

// MarkPlaying records that the embedded player reported a playing state.
func (o *Overlay) MarkPlaying() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.playing = true
}

// MarkEnded records completion (or a player error, which reveals the details
// immediately) and returns the updated view.
func (o *Overlay) MarkEnded() (View, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.playing = false
	if o.current == nil {
		return View{}, false
	}
	o.current.DetailsVisible = true
	return *o.current, true
}

// Playing reports whether a video is currently playing.
func (o *Overlay) Playing() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.playing
}

// Close stops any playback state and clears the overlay. Safe to call any
// number of times.
func (o *Overlay) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.playing = false
	o.current = nil
}
