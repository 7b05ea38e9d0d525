package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"hygiene-store/pkg/ads"
	"hygiene-store/pkg/api"
	"hygiene-store/pkg/assets"
	"hygiene-store/pkg/chat"
	"hygiene-store/pkg/config"
	"hygiene-store/pkg/detail"
	"hygiene-store/pkg/feed"
	"hygiene-store/pkg/models"
	"hygiene-store/pkg/normalize"
	"hygiene-store/pkg/render"
	"hygiene-store/pkg/subscribe"
	"hygiene-store/pkg/visitors"

	scalargo "github.com/bdpiprava/scalar-go"
)

var (
	cfg              config.Config
	feedClient       = feed.NewClient()
	responder        = chat.NewResponder()
	overlay          = detail.NewOverlay("")
	visitorCounter   = visitors.NewCounter(0)
	subscribeService = subscribe.NewService("")
	assetCache       *assets.Cache

	// Records of the latest render pass, replaced wholesale each time.
	currentMu      sync.Mutex
	currentRecords []models.ProductRecord
)

func main() {
	cfg = config.Load()

	var err error
	assetCache, err = assets.New(cfg.CacheDBPath, cfg.AssetCacheVersion, assets.DefaultManifest)
	if err != nil {
		log.Fatalf("Failed to initialize asset cache: %v", err)
	}
	defer assetCache.Close()

	if purged, err := assetCache.Activate(); err != nil {
		log.Printf("Asset cache activation failed: %v", err)
	} else {
		log.Printf("Asset cache active at version %s (%d stale entries purged)", cfg.AssetCacheVersion, purged)
	}
	go assetCache.Warm()

	overlay = detail.NewOverlay(cfg.DefaultVideoID)
	subscribeService = subscribe.NewService(cfg.SubscribeURL)
	visitorCounter = visitors.NewCounter(cfg.VisitorBaseCount)
	stop := make(chan struct{})
	defer close(stop)
	visitorCounter.Start(45*time.Second, stop)

	http.HandleFunc("/", storefrontHandler)
	http.HandleFunc("/docs", docsHandler)
	http.HandleFunc("/assets", assetsHandler)
	http.HandleFunc("/api/products", productsHandler)
	http.HandleFunc("/api/chat", chatHandler)
	http.HandleFunc("/api/ads", adsHandler)
	http.HandleFunc("/api/visitors", visitorsHandler)
	http.HandleFunc("/api/subscribe", subscribeHandler)
	http.HandleFunc("/api/overlay/open", overlayOpenHandler)
	http.HandleFunc("/api/overlay/playing", overlayPlayingHandler)
	http.HandleFunc("/api/overlay/ended", overlayEndedHandler)
	http.HandleFunc("/api/overlay/close", overlayCloseHandler)

	ip := GetOutboundIP()
	if ip != nil {
		fmt.Printf("Local Network URL: http://%s:%s\n", ip.String(), cfg.Port)
	} else {
		fmt.Println("Could not determine local IP address.")
	}
	fmt.Printf("Access URL: http://localhost:%s\n", cfg.Port)
	fmt.Printf("API Docs: http://localhost:%s/docs\n", cfg.Port)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           nil,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Fatal(server.ListenAndServe())
}

func GetOutboundIP() net.IP {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		addrs, _ := net.InterfaceAddrs()
		for _, addr := range addrs {
			if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
				if ipnet.IP.To4() != nil {
					return ipnet.IP
				}
			}
		}
		return nil
	}
	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)

	return localAddr.IP
}

// renderPass runs the whole pipeline once: fetch, normalize, render. The
// previous pass's records are replaced, never patched.
func renderPass() render.Page {
	raws, err := feedClient.Fetch(cfg.FeedURL)
	records := normalize.NormalizeAll(raws)
	page := render.RenderList(records, err, cfg.AffiliateTag)

	currentMu.Lock()
	currentRecords = page.Records
	currentMu.Unlock()

	return page
}

func lookupRecord(asin string) (models.ProductRecord, bool) {
	currentMu.Lock()
	defer currentMu.Unlock()
	for _, rec := range currentRecords {
		if rec.AmazonASIN == asin {
			return rec, true
		}
	}
	return models.ProductRecord{}, false
}

func storefrontHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		api.WriteNotFound(w, "Page not found", r.URL.Path)
		return
	}
	if r.Method != http.MethodGet {
		api.WriteMethodNotAllowed(w, "Use GET for the storefront page.", r.URL.Path)
		return
	}

	page := renderPass()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.HTML(w); err != nil {
		log.Printf("Error rendering storefront page: %v", err)
	}
}

func docsHandler(w http.ResponseWriter, r *http.Request) {
	html, err := scalargo.NewV2(
		scalargo.WithSpecDir("./"),
		scalargo.WithMetaDataOpts(
			scalargo.WithTitle("Hygiene Store API"),
		),
	)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

func productsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.WriteMethodNotAllowed(w, "Use GET for the product list.", r.URL.Path)
		return
	}

	page := renderPass()
	writeJSON(w, r, struct {
		State    string                 `json:"state"`
		Message  string                 `json:"message,omitempty"`
		Products []models.ProductRecord `json:"products"`
		Cards    []render.Card          `json:"cards"`
	}{
		State:    page.State.String(),
		Message:  page.Message,
		Products: page.Records,
		Cards:    page.Cards,
	})
}

func chatHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.WriteMethodNotAllowed(w, "Use POST for chat messages.", r.URL.Path)
		return
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.WriteBadRequest(w, "Invalid JSON body. Expected {\"message\": \"...\"}.", r.URL.Path)
		return
	}
	defer r.Body.Close()

	writeJSON(w, r, map[string]string{"reply": responder.Reply(body.Message)})
}

func adsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.WriteMethodNotAllowed(w, "Use GET for the ad schedules.", r.URL.Path)
		return
	}

	writeJSON(w, r, map[string]any{
		"top":    slotPayload(ads.TopSlot()),
		"bottom": slotPayload(ads.BottomSlot()),
	})
}

func slotPayload(s ads.Slot) map[string]any {
	displayMs := make([]int64, 0, len(s.Durations))
	for _, d := range s.Durations {
		displayMs = append(displayMs, d.Milliseconds())
	}
	return map[string]any{
		"name":       s.Name,
		"texts":      s.Texts,
		"display_ms": displayMs,
	}
}

func visitorsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.WriteMethodNotAllowed(w, "Use GET for the visitor count.", r.URL.Path)
		return
	}
	writeJSON(w, r, map[string]int{"count": visitorCounter.Current()})
}

func subscribeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.WriteMethodNotAllowed(w, "Use POST to subscribe.", r.URL.Path)
		return
	}

	var req subscribe.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteBadRequest(w, "Invalid JSON body. Expected {email, whatsapp, terms}.", r.URL.Path)
		return
	}
	defer r.Body.Close()

	writeJSON(w, r, subscribeService.Submit(req))
}

func overlayOpenHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.WriteMethodNotAllowed(w, "Use POST to open the detail overlay.", r.URL.Path)
		return
	}

	var body struct {
		ASIN string `json:"asin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ASIN == "" {
		api.WriteBadRequest(w, "Invalid JSON body. Expected {\"asin\": \"...\"}.", r.URL.Path)
		return
	}
	defer r.Body.Close()

	record, ok := lookupRecord(body.ASIN)
	if !ok {
		api.WriteNotFound(w, "Product not found in the current render pass.", r.URL.Path)
		return
	}

	view, err := overlay.Open(record, cfg.AffiliateTag)
	if err != nil {
		api.WriteConflict(w, err.Error(), r.URL.Path)
		return
	}
	writeJSON(w, r, view)
}

func overlayPlayingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.WriteMethodNotAllowed(w, "Use POST to report playback.", r.URL.Path)
		return
	}
	overlay.MarkPlaying()
	writeJSON(w, r, map[string]bool{"playing": true})
}

func overlayEndedHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.WriteMethodNotAllowed(w, "Use POST to report playback.", r.URL.Path)
		return
	}
	view, ok := overlay.MarkEnded()
	if !ok {
		api.WriteNotFound(w, "No overlay is open.", r.URL.Path)
		return
	}
	writeJSON(w, r, view)
}

func overlayCloseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.WriteMethodNotAllowed(w, "Use POST to close the overlay.", r.URL.Path)
		return
	}
	overlay.Close()
	writeJSON(w, r, map[string]bool{"closed": true})
}

func assetsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.WriteMethodNotAllowed(w, "Use GET for cached assets.", r.URL.Path)
		return
	}

	url := r.URL.Query().Get("u")
	if url == "" {
		api.WriteBadRequest(w, "Missing asset URL. Expected /assets?u=<manifest url>.", r.URL.Path)
		return
	}

	body, contentType, err := assetCache.Get(url)
	if err == assets.ErrNotInManifest {
		api.WriteNotFound(w, "Asset is not part of the cached manifest.", r.URL.Path)
		return
	}
	if err != nil {
		api.WriteError(w, http.StatusBadGateway, "Bad Gateway", "Asset fetch failed: "+err.Error(), r.URL.Path)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(body)
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		api.WriteInternalServerError(w, fmt.Errorf("failed to encode response"), r.URL.Path)
	}
}
