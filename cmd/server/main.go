package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"setback-area-service/internal/adapters/cache"
	"setback-area-service/internal/adapters/repositories"
	"setback-area-service/internal/adapters/zoning"
	"setback-area-service/internal/api"
	"setback-area-service/internal/config"
	"setback-area-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, YAML zoning) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	zoningPath := config.Get("ZONING_RULES_PATH", "")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := repositories.InitSqliteSchema(db); err != nil {
		log.Fatal(err)
	}
	repo := repositories.NewSqliteSnapshotRepository(db)

	// Redis memoization is optional: identical inputs always produce
	// identical results, so a missing cache only costs recomputation.
	var resultCache ports.ResultCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASS"),
		})
		resultCache = cache.NewRedisResultCache(client, 24*time.Hour)
		log.Printf("result cache enabled addr=%s", addr)
	}

	var resolver ports.RequirementsResolver
	if zoningPath != "" {
		r, err := zoning.LoadYAMLRequirementsResolver(zoningPath)
		if err != nil {
			log.Fatal(err)
		}
		resolver = r
		log.Printf("zoning rules loaded path=%s", zoningPath)
	}

	router := api.NewRouter(resultCache, repo, resolver)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
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
