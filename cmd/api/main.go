package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"charity-events-backend/internal/config"
	"charity-events-backend/internal/httpserver"
	"charity-events-backend/internal/store"
)

// main boots the service: config → DB → schema → HTTP server.
func main() {
	// Load runtime config from environment (CHARITY_DB_*, CHARITY_HTTP_PORT).
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	// Connect to durable storage (Postgres) using a connection pool.
	db, err := store.NewPostgresStore(cfg.DBURL())
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	// Ensure required tables/indexes exist so first boot needs no manual setup.
	if err := db.EnsureSchema(); err != nil {
		logrus.WithError(err).Fatal("schema bootstrap failed")
	}

	router := httpserver.NewRouter(cfg, db)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logrus.WithField("port", cfg.HTTPPort).Info("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down")

	// 5 seconds to finish in-flight requests.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("forced shutdown")
	}
}
