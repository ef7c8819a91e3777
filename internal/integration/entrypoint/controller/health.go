// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports the liveness of the API and its backing services.
// The record store is the only hard dependency; the points ledger and the
// advice provider both have degrade paths, so their state is informational.
type HealthController struct {
	dbHealthChecker     func() bool
	ledgerHealthChecker func() bool
	adviceAvailable     func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Ledger    string `json:"ledger"`
	Advice    string `json:"advice"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker, ledgerHealthChecker, adviceAvailable func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker:     dbHealthChecker,
		ledgerHealthChecker: ledgerHealthChecker,
		adviceAvailable:     adviceAvailable,
	}
}

// Check handles GET /health requests. The overall status degrades only when
// the record store is unreachable; a down ledger or an unconfigured advice
// provider leaves the service functional.
func (h *HealthController) Check(c *gin.Context) {
	status := "ok"

	dbStatus := "disconnected"
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
	} else {
		status = "degraded"
	}

	ledgerStatus := "disconnected"
	if h.ledgerHealthChecker != nil && h.ledgerHealthChecker() {
		ledgerStatus = "connected"
	}

	adviceStatus := "fallback"
	if h.adviceAvailable != nil && h.adviceAvailable() {
		adviceStatus = "ready"
	}

	response := HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Ledger:    ledgerStatus,
		Advice:    adviceStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
