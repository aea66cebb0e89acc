package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikolayk812/efood-demo/internal/catalog"
	"github.com/nikolayk812/efood-demo/internal/httpapi"
	"github.com/nikolayk812/efood-demo/internal/session"
)

func main() {
	// Configuration
	port := getEnv("HTTP_PORT", "8080")
	catalogURL := getEnv("CATALOG_URL", catalog.DefaultURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := catalog.NewClient(catalogURL, nil)
	if err != nil {
		log.Fatalf("Failed to create catalog client: %v", err)
	}

	sess := session.New(client, nil)

	// One-shot catalog load; the API serves the loading state meanwhile.
	go func() {
		if err := sess.Init(ctx); err != nil {
			log.Printf("Catalog load failed: %v", err)
			return
		}
		log.Printf("Catalog loaded from %s", catalogURL)
	}()

	server := &http.Server{
		Addr:    ":" + port,
		Handler: httpapi.NewRouter(sess),
	}

	go func() {
		log.Printf("Storefront API listening on :%s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
