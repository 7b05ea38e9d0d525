package feed

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hygiene-store/pkg/models"
)

func TestClient_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"productName":"Citrus Surface Spray","productPrice":9.99},{"productName":"Hand Sanitizer"}]`)
	}))
	defer ts.Close()

	payloads, err := NewClient().Fetch(ts.URL + "/feed")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(payloads) != 2 {
		t.Fatalf("got %d payloads, want 2", len(payloads))
	}
	if name, _ := payloads[0]["productName"].(string); name != "Citrus Surface Spray" {
		t.Errorf("first payload name = %q, want 'Citrus Surface Spray'", name)
	}
}

func TestClient_Fetch_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	_, err := NewClient().Fetch(ts.URL + "/feed")

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %T: %v", err, err)
	}
	if httpErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want %d", httpErr.StatusCode, http.StatusServiceUnavailable)
	}
}

func TestClient_Fetch_ParseError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"object instead of array", `{"productName":"x"}`},
		{"malformed json", `[{"productName":`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer ts.Close()

			_, err := NewClient().Fetch(ts.URL + "/feed")

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
		})
	}
}

func TestClient_Fetch_EmptyFeed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer ts.Close()

	_, err := NewClient().Fetch(ts.URL + "/feed")
	if !errors.Is(err, models.ErrEmptyFeed) {
		t.Fatalf("expected ErrEmptyFeed, got %v", err)
	}
}

func TestClient_Fetch_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := NewClient().Fetch(url + "/feed")

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %T: %v", err, err)
	}
}
