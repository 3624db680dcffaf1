package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	emailPkg "caseboard/internal/adapters/email"
	web "caseboard/internal/adapters/http"
	"caseboard/internal/adapters/http/perf"
	"caseboard/internal/adapters/storage"
	activityLogStore "caseboard/internal/adapters/storage/activitylog"
	checkInStore "caseboard/internal/adapters/storage/checkin"
	clientStore "caseboard/internal/adapters/storage/client"
	interventionStore "caseboard/internal/adapters/storage/intervention"
	noteStore "caseboard/internal/adapters/storage/note"
	scheduleStore "caseboard/internal/adapters/storage/schedulegrid"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("CASEBOARD_DB", "caseboard.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.MigrateDB(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	stores := &web.Stores{
		ClientStore:       clientStore.NewSQLiteStore(timedDB),
		CheckInStore:      checkInStore.NewSQLiteStore(timedDB),
		InterventionStore: interventionStore.NewSQLiteStore(timedDB),
		NoteStore:         noteStore.NewSQLiteStore(timedDB),
		ActivityLogStore:  activityLogStore.NewSQLiteStore(timedDB),
		ScheduleStore:     scheduleStore.NewSQLiteStore(timedDB),
	}

	// Configure email sender
	resendKey := os.Getenv("CASEBOARD_RESEND_KEY")
	emailFrom := envOrDefault("CASEBOARD_RESEND_FROM", "Caseboard <noreply@caseboard.ph>")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom))
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender())
		if os.Getenv("CASEBOARD_ENV") == "production" {
			log.Println("WARNING: CASEBOARD_RESEND_KEY is not set, email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop, set CASEBOARD_RESEND_KEY for real delivery)")
		}
	}

	// Create HTTP handler with middleware (pass collector for timing + perf view)
	mux := web.NewMux(envOrDefault("CASEBOARD_STATIC_DIR", "static"), stores, collector)

	addr := envOrDefault("CASEBOARD_ADDR", ":8080")
	log.Printf("Caseboard %s starting on %s (env=%s)", version, addr, envOrDefault("CASEBOARD_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
