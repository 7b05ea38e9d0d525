package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything the service reads from the environment.
type Config struct {
	Port              string
	FeedURL           string
	AffiliateTag      string
	SubscribeURL      string
	CacheDBPath       string
	AssetCacheVersion string
	DefaultVideoID    string
	VisitorBaseCount  int
}

// Load reads .env when present, then the environment, falling back to
// defaults suitable for local runs.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading it: %v", err)
	}

	cfg := Config{
		Port:              "9090",
		AffiliateTag:      "your-amazon-affiliate-tag-20",
		CacheDBPath:       "./assets.db",
		AssetCacheVersion: "v4",
		VisitorBaseCount:  120,
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("FEED_URL"); v != "" {
		cfg.FeedURL = v
	}
	if v := os.Getenv("AFFILIATE_TAG"); v != "" {
		cfg.AffiliateTag = v
	}
	if v := os.Getenv("SUBSCRIBE_URL"); v != "" {
		cfg.SubscribeURL = v
	}
	if v := os.Getenv("CACHE_DB_PATH"); v != "" {
		cfg.CacheDBPath = v
	}
	if v := os.Getenv("ASSET_CACHE_VERSION"); v != "" {
		cfg.AssetCacheVersion = v
	}
	if v := os.Getenv("DEFAULT_VIDEO_ID"); v != "" {
		cfg.DefaultVideoID = v
	}
	if v := os.Getenv("VISITOR_BASE_COUNT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			cfg.VisitorBaseCount = parsed
		}
	}

	return cfg
}
