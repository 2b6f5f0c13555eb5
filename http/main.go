package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jrandrade/datastore-gateway/config"
	_ "github.com/jrandrade/datastore-gateway/docs"
	"github.com/jrandrade/datastore-gateway/http/controller"
	routes "github.com/jrandrade/datastore-gateway/http/route"
	infraPkg "github.com/jrandrade/datastore-gateway/infra"
	"github.com/jrandrade/datastore-gateway/repository"
)

// @title        Datastore Gateway API
// @version      1.0
// @description  REST gateway exposing CRUD over a document store, a relational store and object-storage buckets.
// @BasePath     /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	infra, err := infraPkg.InitInfra(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize infra: %v", err)
	}

	repo := repository.InitRepository(infra)
	ctrl := controller.NewController(cfg, infra, repo)
	router := routes.SetupRouter(ctrl)

	server := &http.Server{
		Addr:    ":" + cfg.EnvConfig.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("HTTP server started on :%s", cfg.EnvConfig.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
	infra.Shutdown(shutdownCtx)
}
