package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/auth"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/certificates"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/config"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/database"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/handlers"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/metrics"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/notifier"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/service"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/stats"
	"go.uber.org/zap"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connect to Database
	db := database.Connect(cfg)

	// Notification fan-out over Discord, optional
	var notif notifier.Notifier
	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			logger.Warn("Discord notifier not initialized", zap.Error(err))
		} else {
			notif = notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID, logger)
		}
	}

	certGen, err := certificates.NewFileGenerator(cfg.CertificateDir, cfg.OrganizationName)
	if err != nil {
		logger.Fatal("Failed to initialize certificate generator", zap.Error(err))
	}

	svc := service.New(db, notif, certGen, stats.NewStore(), metrics.New(), logger)
	authHandler := auth.NewAuthHandler(cfg, db)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, handlers.Handlers{
		Auth:         authHandler,
		Event:        handlers.NewEventHandler(svc, authHandler),
		Registration: handlers.NewRegistrationHandler(svc, authHandler),
		Attendance:   handlers.NewAttendanceHandler(svc, authHandler),
		Rating:       handlers.NewRatingHandler(svc, authHandler),
		Volunteer:    handlers.NewVolunteerHandler(svc, authHandler),
		APIKey:       handlers.NewAPIKeyHandler(db, authHandler),
	})

	// Start Server
	logger.Info("Starting server", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
