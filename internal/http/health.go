package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Uptime      float64 `json:"uptime"`
	Environment string  `json:"environment"`
}

type HealthController struct {
	env     string
	started time.Time
}

func NewHealthController(env string) *HealthController {
	return &HealthController{
		env:     env,
		started: time.Now(),
	}
}

func (h *HealthController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now().Format(time.RFC3339),
		Uptime:      time.Since(h.started).Seconds(),
		Environment: h.env,
	})
}
