package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const readinessTimeout = 2 * time.Second

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// pinger is satisfied by *pgxpool.Pool.
type pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessHandler handles GET /health/ready — readiness probe.
// Checks PostgreSQL connectivity before declaring the service ready.
type ReadinessHandler struct {
	db pinger
}

func NewReadinessHandler(db pinger) *ReadinessHandler {
	return &ReadinessHandler{db: db}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status   string                      `json:"status"`
	Services map[string]dependencyStatus `json:"services"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	resp := readinessResponse{
		Status:   "ready",
		Services: make(map[string]dependencyStatus, 1),
	}
	code := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		resp.Status = "not ready"
		resp.Services["postgres"] = dependencyStatus{Status: "down", Error: err.Error()}
		code = http.StatusServiceUnavailable
	} else {
		resp.Services["postgres"] = dependencyStatus{Status: "up"}
	}

	return c.JSON(code, resp)
}
