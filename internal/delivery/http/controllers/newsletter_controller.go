package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"contacthub/internal/delivery/http/helpers"
	"contacthub/internal/domain"
)

// SubscribeRequest is the request body for POST /api/subscribe
type SubscribeRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (s SubscribeRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Email) == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(s.Email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// NewsletterController handles the newsletter subscription endpoint.
type NewsletterController struct {
	Logger  *slog.Logger
	Service domain.SubscriptionService
}

// NewNewsletterController creates a NewsletterController with the given logger and service.
func NewNewsletterController(logger *slog.Logger, svc domain.SubscriptionService) *NewsletterController {
	return &NewsletterController{
		Logger:  logger,
		Service: svc,
	}
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Store a new newsletter subscriber. The email must be well formed and not already subscribed; comparison is exact, with no case normalization.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param body body SubscribeRequest true "Subscription request"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.MessageResponse "invalid or already subscribed email"
// @Failure 500 {object} helpers.MessageResponse
// @Router /api/subscribe [post]
func (c *NewsletterController) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	confirmation, err := c.Service.Subscribe(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) {
			helpers.WriteError(w, http.StatusBadRequest, "Invalid email address")
			return
		}
		if errors.Is(err, domain.ErrAlreadySubscribed) {
			helpers.WriteError(w, http.StatusBadRequest, "This email is already subscribed")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to subscribe. Please try again later.")
		return
	}

	helpers.WriteSuccess(w, http.StatusOK, confirmation)
}
