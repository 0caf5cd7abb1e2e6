package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"contacthub/internal/delivery/http/helpers"
	"contacthub/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ContactRequest is the request body for POST /api/contact
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate implements Validator.
func (c ContactRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(c.Email) {
		errs = append(errs, "invalid email format")
	}
	if strings.TrimSpace(c.Subject) == "" {
		errs = append(errs, "subject is required")
	}
	if strings.TrimSpace(c.Message) == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

// ContactController handles the contact form endpoint.
type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

// NewContactController creates a ContactController with the given logger and service.
func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Submit a contact message
// @Description Store a contact-form submission and notify the site owner and the submitter by email. All four fields are required.
// @Tags contact
// @Accept json
// @Produce json
// @Param body body ContactRequest true "Contact submission"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.MessageResponse "missing or malformed fields"
// @Failure 429 {string} string "rate limit exceeded"
// @Failure 500 {object} helpers.MessageResponse "persistence or email dispatch failure"
// @Router /api/contact [post]
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	confirmation, err := c.Service.Submit(r.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) || errors.Is(err, domain.ErrInvalidEmail) {
			helpers.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to send your message. Please try again later.")
		return
	}

	helpers.WriteSuccess(w, http.StatusOK, confirmation)
}
