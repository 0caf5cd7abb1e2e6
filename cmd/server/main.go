package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"contacthub/config"
	_ "contacthub/docs"
	authadapter "contacthub/internal/adapters/auth"
	emailadapter "contacthub/internal/adapters/email"
	delivery "contacthub/internal/delivery/http"
	"contacthub/internal/delivery/http/controllers"
	"contacthub/internal/delivery/http/middleware"
	"contacthub/internal/repository/postgres"
	"contacthub/internal/services"
)

// @title contacthub API
// @version 1.0
// @description Contact form and newsletter subscription backend.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.PingContext(context.Background()); err != nil {
		// Keep serving; /api/health reports the store as Disconnected.
		logger.Warn("database unreachable at startup", "err", err)
	}

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: emailadapter.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretKey,
			InsecureSkipVerify: cfg.Email.SESInsecureTLS,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	contactRepo := postgres.NewContactRepository(db)
	subscriberRepo := postgres.NewSubscriberRepository(db)

	emailService := services.NewEmailService(mailer, cfg.Email.OwnerAddress)
	contactService := services.NewContactService(contactRepo, emailService)
	subscriptionService := services.NewSubscriptionService(subscriberRepo)

	tokens := authadapter.NewJWTTokens(cfg.JWTSecret)
	adminService := services.NewAdminService(cfg.AdminPasswordHash, authadapter.NewBcryptVerifier(), tokens, cfg.TokenExpiry)

	healthController := controllers.NewHealthController(db)
	contactController := controllers.NewContactController(logger, contactService)
	newsletterController := controllers.NewNewsletterController(logger, subscriptionService)
	adminController := controllers.NewAdminController(logger, adminService, contactService, subscriptionService)

	mux := delivery.NewRouter(
		delivery.RouterConfig{
			ContactRateLimit:  cfg.ContactRateLimit,
			ContactRateWindow: cfg.ContactRateWindow,
		},
		healthController,
		contactController,
		newsletterController,
		adminController,
		tokens,
	)

	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, mux))
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", server.Addr, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
