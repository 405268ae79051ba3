package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kaamkarwalo/booking-api/internal/config"
	"github.com/kaamkarwalo/booking-api/internal/handlers"
	"github.com/kaamkarwalo/booking-api/internal/repository"
	"github.com/kaamkarwalo/booking-api/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, relying on environment variables")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Str("service", "booking-api").Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// --- Database connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDatabase)
	log.Info().Str("database", cfg.MongoDatabase).Msg("connected to MongoDB")

	// Phone uniqueness lives in the storage engine, not in handler code.
	if err := repository.EnsureUserIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)

	// --- Notification senders (optional, best effort) ---
	var whatsapp services.TextSender
	if sender, err := services.NewWhatsAppSender(cfg.WhatsAppToken, cfg.WhatsAppPhoneID); err != nil {
		log.Warn().Err(err).Msg("WhatsApp notifications disabled")
	} else {
		whatsapp = sender
	}

	var mail services.MailSender
	if sender, err := services.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.AdminEmail, cfg.AdminEmailPass); err != nil {
		log.Warn().Err(err).Msg("admin email notifications disabled")
	} else {
		mail = sender
	}

	dispatcher := services.NewDispatcher(whatsapp, mail, deliveryRepo, cfg.AdminWhatsApp, cfg.AdminEmail)

	// --- Handlers ---
	h := handlers.NewHandler(userRepo, bookingRepo, deliveryRepo, dispatcher)

	// --- Gin router ---
	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")
	{
		api.POST("/register", h.RegisterUser)
		api.POST("/login", h.Login)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.GetBookings)
		api.GET("/bookings/:id/deliveries", h.GetBookingDeliveries)
		api.GET("/users", h.GetUsers)
		api.GET("/users/:id", h.GetUser)
	}
	r.GET("/debug-all-users", h.DebugAllUsers)
	r.GET("/health", func(c *gin.Context) {
		if err := client.Ping(c.Request.Context(), nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start server ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	// Drain queued booking alerts before exit.
	dispatcher.Close()
	log.Info().Msg("server exiting")
}
