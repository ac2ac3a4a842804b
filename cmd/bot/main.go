package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dutyrota/dutyrota/internal/config"
	"github.com/dutyrota/dutyrota/internal/database"
	"github.com/dutyrota/dutyrota/internal/domain/service"
	"github.com/dutyrota/dutyrota/internal/handlers"
	"github.com/dutyrota/dutyrota/internal/logger"
	"github.com/dutyrota/dutyrota/internal/notifier"
	"github.com/dutyrota/dutyrota/internal/recurrence"
	"github.com/dutyrota/dutyrota/internal/scheduler"
	"github.com/dutyrota/dutyrota/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.Environment)
	log := logger.Get()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Migrations completed successfully")

	dm := database.NewInstance(db)

	slackAPI := slack.New(cfg.SlackBotToken)
	slackClient := notifier.NewClient(slackAPI, cfg.SlackRatePerSec)

	services := service.NewInstance(dm, slackClient, recurrence.New(), log)

	driver := scheduler.New(services.Scheduler, log, cfg.CycleCronSpec, cfg.SweepCronSpec)
	if err := driver.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer driver.Stop()

	handler := handlers.New(services.Rota, services.Skip, cfg.SlackSigningSecret)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	go func() {
		log.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Server shutdown error: %v", err)
	}
}
