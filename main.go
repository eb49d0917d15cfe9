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

	"jobbox/config"
	"jobbox/handlers"
	"jobbox/store"
)

// database is the store handed to the handlers plus the client lifecycle.
type database interface {
	handlers.Store
	Ping(ctx context.Context) error
	Disconnect(ctx context.Context) error
}

// openDatabase connects the one client shared by every handler. Connection
// problems are logged and the routes fail on use instead.
func openDatabase(ctx context.Context, cfg *config.Config) database {
	if cfg.MongoURI == "" {
		log.Printf("ERROR: no MongoDB URI configured")
		return store.NewOffline(errors.New("no MongoDB URI configured"))
	}

	client, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Printf("ERROR: %v", err)
		return store.NewOffline(err)
	}
	db := store.New(client, cfg.DBName)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.Ping(pingCtx); err != nil {
		log.Printf("ERROR: MongoDB ping failed: %v", err)
	} else {
		log.Printf("INFO: Db Connect (%s)", cfg.DBName)
	}
	return db
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("ERROR: config: %v", err)
	}

	db := openDatabase(context.Background(), cfg)

	h := handlers.NewHandler(db, cfg.RequestTimeout)
	router := handlers.NewRouter(h)

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handlers.CORS(cfg.CORSOrigins)(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("INFO: Server running on http://localhost%s", cfg.Addr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ERROR: Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("INFO: Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("ERROR: Server forced to shutdown: %v", err)
	}
	if err := db.Disconnect(ctx); err != nil {
		log.Printf("ERROR: Failed to disconnect from MongoDB: %v", err)
	}
	log.Println("INFO: Server exited")
}
