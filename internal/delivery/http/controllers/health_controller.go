package controllers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"contacthub/internal/delivery/http/helpers"
)

const healthPingTimeout = time.Second

// HealthResponse is the response body for GET /api/health
// swagger:model HealthResponse
type HealthResponse struct {
	Status  string `json:"status"`
	DBState string `json:"dbState"`
}

// HealthController reports process and database connectivity status.
type HealthController struct {
	DB *sql.DB
}

// NewHealthController creates a HealthController with the given database handle.
func NewHealthController(db *sql.DB) *HealthController {
	return &HealthController{DB: db}
}

// Get godoc
// @Summary Health check
// @Description Reports process status and whether the database connection is currently established. Always returns 200 for a reachable process.
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Router /api/health [get]
func (c *HealthController) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	dbState := "Connected"
	if err := c.DB.PingContext(ctx); err != nil {
		dbState = "Disconnected"
	}
	helpers.WriteJSON(w, http.StatusOK, HealthResponse{Status: "OK", DBState: dbState})
}
