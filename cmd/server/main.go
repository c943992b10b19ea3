package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"portfolio/internal/config"
	"portfolio/internal/handler"
	"portfolio/internal/hub"
	"portfolio/internal/loader"
	"portfolio/internal/mailer"
	"portfolio/internal/repository/sqlite"
	"portfolio/internal/watcher"
)

func main() {
	// A missing .env is fine; production uses real environment variables.
	_ = godotenv.Load()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting portfolio server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	repo, err := sqlite.New(cfg.DBPath, sqlite.Options{
		SessionTTLDays:    cfg.SessionTTLDays,
		SeedAdminEmail:    cfg.SeedAdminEmail,
		SeedAdminPassword: cfg.SeedAdminPassword,
	})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer repo.Close()
	log.Printf("Database opened: %s", cfg.DBPath)

	mail := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		To:       cfg.ContactEmail,
	})
	if !mail.Configured() {
		log.Println("SMTP not configured, contact notifications disabled")
	}

	eventHub := hub.New()
	go eventHub.Run()

	h := handler.New(repo, mail)
	h.SetEventHub(eventHub)

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()

	if cfg.ContentFile != "" {
		syncContent := func() {
			bundle, err := loader.LoadFile(cfg.ContentFile)
			if err != nil {
				log.Printf("Failed to load content file: %v", err)
				return
			}
			if err := repo.ImportBundle(watchCtx, bundle); err != nil {
				log.Printf("Failed to import content file: %v", err)
				return
			}
			log.Printf("Content imported from %s", cfg.ContentFile)
			eventHub.Broadcast(hub.Event{Type: hub.EventContentImported})
		}

		syncContent()
		go func() {
			w := watcher.New(cfg.ContentFile, syncContent)
			if err := w.Watch(watchCtx); err != nil && err != context.Canceled {
				log.Printf("Content watcher stopped: %v", err)
			}
		}()
	}

	mux := http.NewServeMux()
	h.Register(mux)

	finalHandler := handler.Chain(mux,
		handler.Recover,
		handler.CORS(cfg.CORSOrigins),
		handler.Logger,
	)

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      finalHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	watchCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
