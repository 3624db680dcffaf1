package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"caseboard/internal/adapters/email"
	"caseboard/internal/adapters/http/middleware"
	"caseboard/internal/adapters/http/perf"
	activityLogStore "caseboard/internal/adapters/storage/activitylog"
	checkInStore "caseboard/internal/adapters/storage/checkin"
	clientStore "caseboard/internal/adapters/storage/client"
	interventionStore "caseboard/internal/adapters/storage/intervention"
	noteStore "caseboard/internal/adapters/storage/note"
	scheduleStore "caseboard/internal/adapters/storage/schedulegrid"
)

// Stores holds all storage dependencies.
type Stores struct {
	ClientStore       clientStore.Store
	CheckInStore      checkInStore.Store
	InterventionStore interventionStore.Store
	NoteStore         noteStore.Store
	ActivityLogStore  activityLogStore.Store
	ScheduleStore     scheduleStore.Store
}

// loadCSRFKey reads the CSRF secret from CASEBOARD_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("CASEBOARD_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("CASEBOARD_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("CASEBOARD_ENV") == "production" {
		log.Fatal("CASEBOARD_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (tokens won't survive restart). Set CASEBOARD_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// SetEmailSender sets the global email sender for the application.
// The sender carries its own from address.
func SetEmailSender(sender email.Sender) {
	emailSender = sender
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, collector *perf.Collector) http.Handler {
	stores = s
	perfCollector = collector

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
