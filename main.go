package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"inkwell/api"
	"inkwell/cache"
	"inkwell/config"
	"inkwell/database"
	"inkwell/maintenance"
	"inkwell/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	responseCache := cache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	apiServer := api.New(db, responseCache, cfg)
	r := initRouter(cfg, apiServer)

	ctx, cancel := context.WithCancel(context.Background())
	manager := maintenance.New(db, cfg.Database.Path, cfg.Backup.Dir, cfg.Backup.Keep)
	if cfg.Backup.Enabled {
		go manager.Run(ctx, cfg.Backup.Interval)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	addr := fmt.Sprintf(":%d", cfg.Port)
	go func() {
		log.Printf("Running on http://localhost%s (env: %s)", addr, cfg.Env)
		if err := http.ListenAndServe(addr, r); err != nil {
			log.Printf("HTTP server stopped: %v", err)
		}
	}()

	// Block until a signal is received
	<-signals
	log.Println("Shutting down gracefully...")

	cancel()
	responseCache.Stop()
	if err := database.Close(db); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}

func initRouter(cfg *config.Config, apiServer *api.API) *chi.Mux {
	r := chi.NewRouter()

	CORSMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	r.Use(CORSMiddleware.Handler)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(httprate.LimitByIP(cfg.RateLimit.Requests, cfg.RateLimit.Window)) // shared across all routes
	r.Use(middleware.Recoverer)

	r.Get("/", web.IndexHandler)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/v1", apiServer.Routes())
	})

	return r
}
