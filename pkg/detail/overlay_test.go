package detail

import (
	"strings"
	"testing"

	"hygiene-store/pkg/models"
)

func testRecord() models.ProductRecord {
	return models.ProductRecord{
		Name:       "Citrus Surface Spray",
		AmazonASIN: "B01ABCDEFG",
		Price:      9.99,
		VideoURL:   "https://www.youtube.com/embed/abc123",
	}
}

func TestOverlay_OpenUsesRecordVideo(t *testing.T) {
	o := NewOverlay("")

	view, err := o.Open(testRecord(), "test-tag-20")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if view.VideoURL != "https://www.youtube.com/embed/abc123" {
		t.Errorf("VideoURL = %q, want record video", view.VideoURL)
	}
	if view.DetailsVisible {
		t.Errorf("details should stay hidden until the video signals completion")
	}
}

func TestOverlay_OpenFallsBackToDefaultVideo(t *testing.T) {
	o := NewOverlay("promo999")

	rec := testRecord()
	rec.VideoURL = ""
	view, err := o.Open(rec, "test-tag-20")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !strings.Contains(view.VideoURL, "promo999") {
		t.Errorf("VideoURL = %q, want the default promotional video", view.VideoURL)
	}
}

func TestOverlay_SingleFlight(t *testing.T) {
	o := NewOverlay("")

	if _, err := o.Open(testRecord(), ""); err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	o.MarkPlaying()

	if _, err := o.Open(testRecord(), ""); err != ErrVideoPlaying {
		t.Fatalf("second Open while playing: err = %v, want ErrVideoPlaying", err)
	}

	// Completion resets the flag and reveals the details.
	view, ok := o.MarkEnded()
	if !ok {
		t.Fatalf("MarkEnded reported no overlay")
	}
	if !view.DetailsVisible {
		t.Errorf("details should be revealed after the video ends")
	}
	if _, err := o.Open(testRecord(), ""); err != nil {
		t.Errorf("Open after video end failed: %v", err)
	}
}

func TestOverlay_CloseIsIdempotent(t *testing.T) {
	o := NewOverlay("")

	if _, err := o.Open(testRecord(), ""); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	o.MarkPlaying()

	o.Close()
	o.Close()

	if o.Playing() {
		t.Errorf("playing flag must reset on close")
	}
	if _, ok := o.MarkEnded(); ok {
		t.Errorf("closed overlay should have no current view")
	}
	if _, err := o.Open(testRecord(), ""); err != nil {
		t.Errorf("Open after close failed: %v", err)
	}
}
