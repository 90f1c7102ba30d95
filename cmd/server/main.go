package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"tour-planner-service/internal/adapters/cache"
	"tour-planner-service/internal/adapters/geocode"
	"tour-planner-service/internal/adapters/notify"
	"tour-planner-service/internal/adapters/routing"
	"tour-planner-service/internal/api"
	"tour-planner-service/internal/config"
	"tour-planner-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, Nominatim, OSRM, LINE)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	port := config.Get("PORT", "8080")
	nominatimURL := config.Get("NOMINATIM_URL", "")
	osrmURL := config.Get("OSRM_URL", "")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := cache.InitSqliteSchema(db); err != nil {
		log.Fatal(err)
	}

	// Geocode results live in Redis when REDIS_ADDR is set, otherwise in
	// the local SQLite file. Leg estimates always stay in SQLite.
	var geocodeCache ports.GeocodeCache = cache.NewSqliteGeocodeCache(db)
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		geocodeCache = cache.NewRedisGeocodeCache(client, 30*24*time.Hour)
		log.Printf("Geocode cache backend=redis addr=%s", addr)
	}

	geocoder := geocode.NewNominatimGeocoder(nominatimURL, geocodeCache)

	// OSRM is primary; on failure the fallback provider degrades to
	// great-circle estimates instead of failing the plan.
	legCache := cache.NewSqliteLegCache(db)
	provider := routing.NewFallbackProvider(routing.NewOSRMProvider(osrmURL, legCache))

	var notifier ports.Notifier
	if token := os.Getenv("LINE_CHANNEL_ACCESS_TOKEN"); strings.TrimSpace(token) != "" {
		notifier, err = notify.NewLineNotifier(token)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("LINE notifications enabled")
	}

	router := api.NewRouter(geocoder, provider, notifier)

	// Timeouts are tuned for cold-cache planning (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
