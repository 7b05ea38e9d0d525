package assets

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"hygiene-store/pkg/logger"

	_ "modernc.org/sqlite"
)

// ErrNotInManifest is returned for URLs outside the fixed asset manifest.
var ErrNotInManifest = errors.New("asset is not in the manifest")

// DefaultManifest lists the application shell and the third-party resources
// the storefront page loads. Bump the cache version whenever this changes.
var DefaultManifest = []string{
	"https://cdn.tailwindcss.com",
	"https://fonts.googleapis.com/css2?family=Inter:wght@400;600&family=Roboto:wght@700&display=swap",
	"https://fonts.googleapis.com/icon?family=Material+Icons",
	"https://static-na.payments-amazon.com/OffAmazonPayments/us/js/Widgets.js",
	"https://www.youtube.com/iframe_api",
	"https://flagcdn.com/us.svg",
	"https://via.placeholder.com/300x200?text=Sample+Product",
	"https://via.placeholder.com/600x200?text=Sponsored+Ad",
}

// Cache is the versioned read-through store for static assets: cache-first,
// network fallback, persisted in sqlite. Entries are keyed by (version, url)
// so activating a new version leaves no stale rows behind.
type Cache struct {
	db       *sql.DB
	version  string
	client   *http.Client
	manifest map[string]bool
}

func New(dbPath, version string, manifest []string) (*Cache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS assets (
			version TEXT NOT NULL,
			url TEXT NOT NULL,
			content_type TEXT NOT NULL,
			body BLOB NOT NULL,
			fetched_at DATETIME NOT NULL,
			PRIMARY KEY (version, url)
		)
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	set := make(map[string]bool, len(manifest))
	for _, u := range manifest {
		set[u] = true
	}

	return &Cache{
		db:       db,
		version:  version,
		client:   &http.Client{Timeout: 30 * time.Second},
		manifest: set,
	}, nil
}

// Activate purges every cached asset that does not belong to the current
// version and returns the number of rows removed.
func (c *Cache) Activate() (int64, error) {
	res, err := c.db.Exec(`DELETE FROM assets WHERE version != ?`, c.version)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Warm pre-fetches the manifest. Individual failures are logged and skipped
// so one flaky URL cannot block startup.
func (c *Cache) Warm() {
	for u := range c.manifest {
		if _, _, ok := c.lookup(u); ok {
			continue
		}
		if _, _, err := c.fetchAndStore(u); err != nil {
			log.Printf("Asset cache: failed to warm %s: %v", u, err)
		}
	}
}

// InManifest reports whether the URL is servable from this cache.
func (c *Cache) InManifest(url string) bool {
	return c.manifest[url]
}

// Get serves a manifest asset cache-first with network fallback.
func (c *Cache) Get(url string) (body []byte, contentType string, err error) {
	if !c.InManifest(url) {
		return nil, "", ErrNotInManifest
	}
	if body, contentType, ok := c.lookup(url); ok {
		logger.Dedup("Asset cache hit for %s", url)
		return body, contentType, nil
	}
	return c.fetchAndStore(url)
}

func (c *Cache) lookup(url string) (body []byte, contentType string, ok bool) {
	err := c.db.QueryRow(
		`SELECT body, content_type FROM assets WHERE version = ? AND url = ?`,
		c.version, url,
	).Scan(&body, &contentType)
	if err != nil {
		return nil, "", false
	}
	return body, contentType, true
}

func (c *Cache) fetchAndStore(url string) (body []byte, contentType string, err error) {
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("asset fetch for %s returned status %d", url, resp.StatusCode)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	contentType = resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = c.db.Exec(
		`INSERT INTO assets (version, url, content_type, body, fetched_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(version, url)
		 DO UPDATE SET content_type = excluded.content_type, body = excluded.body, fetched_at = excluded.fetched_at`,
		c.version, url, contentType, body, time.Now(),
	)
	if err != nil {
		log.Printf("Asset cache: failed to store %s: %v", url, err)
	}
	return body, contentType, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}
