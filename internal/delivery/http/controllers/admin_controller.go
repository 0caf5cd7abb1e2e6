package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"contacthub/internal/delivery/http/helpers"
	"contacthub/internal/domain"
)

// LoginRequest is the request body for POST /api/admin/login
type LoginRequest struct {
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	if l.Password == "" {
		return []string{"password is required"}
	}
	return nil
}

// AdminController handles admin login and record listing endpoints.
type AdminController struct {
	Logger        *slog.Logger
	Admin         domain.AdminService
	Contacts      domain.ContactService
	Subscriptions domain.SubscriptionService
}

// NewAdminController creates an AdminController with the given logger and services.
func NewAdminController(logger *slog.Logger, admin domain.AdminService, contacts domain.ContactService, subscriptions domain.SubscriptionService) *AdminController {
	return &AdminController{
		Logger:        logger,
		Admin:         admin,
		Contacts:      contacts,
		Subscriptions: subscriptions,
	}
}

// Login godoc
// @Summary Admin login
// @Description Exchange the admin password for a Bearer token used on the admin list endpoints.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Admin credentials"
// @Success 200 {object} helpers.TokenResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /api/admin/login [post]
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Admin.Login(req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			helpers.WriteError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "login failed")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.TokenResponse{Success: true, Token: token})
}

// ListMessages godoc
// @Summary List contact messages
// @Description Paginated list of stored contact messages, newest first. Requires Bearer token.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.ListResponse "data contains contact messages"
// @Failure 401 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /api/admin/messages [get]
func (c *AdminController) ListMessages(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	messages, total, err := c.Contacts.ListMessages(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "failed to list messages")
		return
	}
	if messages == nil {
		messages = []*domain.ContactMessage{}
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.ListResponse{
		Success: true,
		Data:    messages,
		Meta:    helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// ListSubscribers godoc
// @Summary List newsletter subscribers
// @Description Paginated list of newsletter subscribers, newest first. Requires Bearer token.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.ListResponse "data contains subscribers"
// @Failure 401 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /api/admin/subscribers [get]
func (c *AdminController) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	subscribers, total, err := c.Subscriptions.ListSubscribers(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "failed to list subscribers")
		return
	}
	if subscribers == nil {
		subscribers = []*domain.Subscriber{}
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.ListResponse{
		Success: true,
		Data:    subscribers,
		Meta:    helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
