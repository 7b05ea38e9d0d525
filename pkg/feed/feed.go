package feed

import (
	"encoding/json"
	"fmt"
	"log"

	"hygiene-store/pkg/models"

	"github.com/gocolly/colly/v2"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// NetworkError means the request never produced an HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "feed request failed: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError means the feed answered with a non-2xx status.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("feed returned status %d", e.StatusCode)
}

// ParseError means the body was not a JSON array of payload objects.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "feed body is not a product array: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// Client fetches the configured product feed. One GET per call, no retry,
// no timeout beyond the transport defaults.
type Client struct{}

func NewClient() *Client {
	return &Client{}
}

// Fetch issues a single GET and decodes the body as a JSON array of raw
// payloads. Anything other than a 2xx status with a non-empty JSON array is
// an error: *NetworkError, *HTTPError, *ParseError or models.ErrEmptyFeed.
func (c *Client) Fetch(url string) ([]models.RawPayload, error) {
	// Fresh collector per fetch; collectors refuse to revisit a URL.
	collector := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.IgnoreRobotsTxt(),
	)

	var body []byte
	var status int
	collector.OnResponse(func(r *colly.Response) {
		body = r.Body
	})
	collector.OnError(func(r *colly.Response, _ error) {
		if r != nil {
			status = r.StatusCode
		}
	})

	log.Printf("Fetching product feed from %s", url)
	if err := collector.Visit(url); err != nil {
		if status != 0 {
			return nil, &HTTPError{StatusCode: status}
		}
		return nil, &NetworkError{Err: err}
	}

	if len(body) == 0 {
		return nil, &ParseError{Err: fmt.Errorf("empty response body")}
	}

	var payloads []models.RawPayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		return nil, &ParseError{Err: err}
	}
	if len(payloads) == 0 {
		return nil, models.ErrEmptyFeed
	}
	return payloads, nil
}
