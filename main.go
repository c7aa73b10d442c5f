package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	httpapi "github.com/nestfinder/browse-api/http"
	"github.com/nestfinder/browse-api/internal/audit"
	"github.com/nestfinder/browse-api/internal/catalog"
	"github.com/nestfinder/browse-api/internal/env"
	"github.com/nestfinder/browse-api/internal/events"
	"github.com/nestfinder/browse-api/internal/prefstore"
	"github.com/nestfinder/browse-api/internal/redisx"
	"github.com/nestfinder/browse-api/internal/refresh"
)

func main() {
	_ = godotenv.Load()

	port := env.GetInt("PORT", 4010)
	seedSource := os.Getenv("SEED_SOURCE")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	cat, err := catalog.LoadSource(ctx, seedSource)
	cancel()
	if err != nil {
		log.Fatalf("catalog load error: %v", err)
	}
	for _, warn := range cat.Validate() {
		log.Printf("[WARN] seed: %s", warn)
	}
	provider := catalog.NewProvider(cat)
	log.Printf("catalog loaded: %d listings, %d agents", cat.Len(), len(cat.Agents()))

	store := openPrefStore()

	pub := events.NewInMemory(256)
	trail := &audit.Trail{Pub: pub}
	go trail.Run(context.Background())

	var reloader *refresh.Reloader
	if seedSource != "" {
		reloader = refresh.New(env.GetDuration("RELOAD_MIN_INTERVAL", time.Minute), func(ctx context.Context) {
			next, err := catalog.LoadSource(ctx, seedSource)
			if err != nil {
				log.Printf("[WARN] catalog reload failed: %v", err)
				return
			}
			provider.Replace(next)
			log.Printf("[INFO] catalog reloaded: %d listings", next.Len())
		})
	}

	router := BuildRouter(RouterDeps{
		Catalog:  provider,
		Profiles: httpapi.NewProfiles(store),
		Pub:      pub,
		Reloader: reloader,
	})

	log.Printf("browse-api listening on :%d", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), router); err != nil {
		log.Fatal(err)
	}
}

// openPrefStore picks the preference backend from PREFS_BACKEND:
// file (default), redis, postgres or memory.
func openPrefStore() prefstore.Store {
	switch backend := env.Get("PREFS_BACKEND", "file"); backend {
	case "redis":
		client := redisx.New(env.Get("REDIS_ADDR", "localhost:6379"), os.Getenv("REDIS_PASSWORD"), env.GetInt("REDIS_DB", 0))
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx); err != nil {
			log.Fatalf("redis ping error: %v", err)
		}
		return prefstore.NewRedis(client, env.Get("PREFS_REDIS_PREFIX", "prefs"))
	case "postgres":
		pg, err := prefstore.OpenPostgres(env.Must("PG_DSN"))
		if err != nil {
			log.Fatalf("postgres open error: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := pg.Ping(ctx); err != nil {
			log.Fatalf("postgres ping error: %v", err)
		}
		if err := pg.Migrate(ctx); err != nil {
			log.Fatalf("postgres migrate error: %v", err)
		}
		return pg
	case "memory":
		return prefstore.NewMemory()
	default:
		fs, err := prefstore.NewFile(env.Get("PREFS_DIR", "data/prefs"))
		if err != nil {
			log.Fatalf("prefs dir error: %v", err)
		}
		return fs
	}
}
