package subscribe

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"
)

// Request is the subscription form body.
type Request struct {
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
	Terms    bool   `json:"terms"`
}

// Result is the inline message the page shows verbatim.
type Result struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Service validates subscription requests and forwards them to the
// configured upstream endpoint.
type Service struct {
	UpstreamURL string
	Client      *http.Client
}

func NewService(upstreamURL string) *Service {
	return &Service{
		UpstreamURL: upstreamURL,
		Client:      &http.Client{Timeout: 15 * time.Second},
	}
}

// Submit returns a user-facing result; it never exposes a raw technical
// error beyond the plain-language message.
func (s *Service) Submit(req Request) Result {
	if req.Email == "" || req.WhatsApp == "" || !req.Terms {
		return Result{Status: "error", Message: "Please fill in all fields and agree to the terms."}
	}
	if s.UpstreamURL == "" {
		return Result{Status: "error", Message: "Subscriptions are not available right now."}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Result{Status: "error", Message: "Subscription failed. Please try again later."}
	}

	resp, err := s.Client.Post(s.UpstreamURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return Result{Status: "error", Message: "Subscription failed. Please check your connection and try again."}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{Status: "error", Message: "Subscription failed. Please try again later."}
	}

	var upstream Result
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil || upstream.Status != "success" {
		msg := "Subscription failed. Please try again later."
		if upstream.Message != "" {
			msg = "Subscription failed: " + upstream.Message
		}
		return Result{Status: "error", Message: msg}
	}

	return Result{Status: "success", Message: "Thank you for subscribing! You will receive early deals."}
}
