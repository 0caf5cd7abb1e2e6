package http

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"contacthub/internal/delivery/http/controllers"
	"contacthub/internal/delivery/http/middleware"
	"contacthub/internal/domain"
)

// RouterConfig carries the route-level settings the router needs.
type RouterConfig struct {
	ContactRateLimit  int64
	ContactRateWindow time.Duration
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	cfg RouterConfig,
	health *controllers.HealthController,
	contact *controllers.ContactController,
	newsletter *controllers.NewsletterController,
	admin *controllers.AdminController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Public API
	mux.HandleFunc("GET /api/health", health.Get)
	mux.Handle("POST /api/contact",
		middleware.Throttle(cfg.ContactRateWindow, cfg.ContactRateLimit, http.HandlerFunc(contact.Submit)))
	mux.HandleFunc("POST /api/subscribe", newsletter.Subscribe)

	// Admin
	requireAdmin := middleware.RequireAdmin(verifier)
	mux.HandleFunc("POST /api/admin/login", admin.Login)
	mux.HandleFunc("GET /api/admin/messages", requireAdmin(admin.ListMessages))
	mux.HandleFunc("GET /api/admin/subscribers", requireAdmin(admin.ListSubscribers))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
