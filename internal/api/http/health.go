package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const readyTimeout = 2 * time.Second

// Pinger reports whether the document store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type ReadyResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}

type HealthHandler struct {
	serviceName string
	db          Pinger
}

func NewHealthHandler(serviceName string, db Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		db:          db,
	}
}

// HealthCheck is the liveness probe. It never touches storage.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: h.serviceName,
	})
}

// ReadyCheck pings the store.
func (h *HealthHandler) ReadyCheck(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, ReadyResponse{Status: "unavailable", DB: "disabled"})
		return
	}

	pingCtx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := h.db.Ping(pingCtx); err != nil {
		c.JSON(http.StatusServiceUnavailable, ReadyResponse{Status: "unavailable", DB: "down"})
		return
	}
	c.JSON(http.StatusOK, ReadyResponse{Status: "ok", DB: "up"})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/ready", h.ReadyCheck)
}
