package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hoplist.org/internal/auth"
	"hoplist.org/internal/catalog"
	"hoplist.org/internal/config"
	"hoplist.org/internal/httpapi"
	"hoplist.org/internal/obs"
)

var (
	version = "1.0.0"
	commit  = "dev"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// The forced-identity override skips token verification entirely; a
	// deployed instance must never start with it enabled.
	if cfg.Production() && cfg.ForceUser != "" {
		log.Fatal("cannot force a user in production; aborting")
	}

	obs.Init()
	obs.InitBuildInfo(version, commit)

	key, err := auth.LoadKey(cfg.JWTKeyFile)
	if err != nil {
		log.Fatalf("jwt key: %v", err)
	}
	codec, err := auth.NewCodec(key)
	if err != nil {
		log.Fatalf("token codec: %v", err)
	}

	var (
		users auth.UserStore
		probe httpapi.ReadyProbe
	)
	if cfg.PGDSN != "" {
		pg, err := auth.OpenPG(cfg.PGDSN)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer pg.Close()
		users = pg
		probe = httpapi.ReadyProbe{DB: pg.DB()}
	} else {
		log.Print("no HOPLIST_PG_DSN configured, using in-memory user store")
		users = auth.NewInMemory()
	}

	authsvc, err := auth.NewService(users, codec)
	if err != nil {
		log.Fatalf("auth service: %v", err)
	}

	cache := catalog.NewCache(
		catalog.NewHTTPSource(cfg.UpstreamURL),
		catalog.WithPerPage(cfg.UpstreamPageSize),
	)

	opts := []httpapi.Option{
		httpapi.WithBase(cfg.Base),
		httpapi.WithRateLimit(cfg.RateBurst, cfg.RatePerSec),
	}
	if cfg.ForceUser != "" {
		log.Printf("WARNING: forcing user %q, token verification disabled", cfg.ForceUser)
		opts = append(opts, httpapi.WithForcedUser(cfg.ForceUser))
	}
	api := httpapi.New(authsvc, users, cache, probe, version, opts...)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting hoplist-api %s on %s", version, srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	log.Println("Stopped")
}
