package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/app/models/dto"
	"github.com/yigit/unibrowser/internal/pkg/logger"
)

// Pinger is implemented by backing stores that can report their health
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse reports the loaded dataset and dependency status
type HealthResponse struct {
	Status       string                  `json:"status" example:"ok"`
	Records      map[models.Category]int `json:"records"`
	SessionStore string                  `json:"sessionStore" example:"ok"`
}

// HealthController reports service health
type HealthController struct {
	dataset      *models.Dataset
	sessionStore Pinger
}

// NewHealthController creates a new HealthController. sessionStore may be
// nil when sessions are kept in memory.
func NewHealthController(dataset *models.Dataset, sessionStore Pinger) *HealthController {
	return &HealthController{
		dataset:      dataset,
		sessionStore: sessionStore,
	}
}

// Health reports record counts and whether the session store answers
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=HealthResponse}
// @Failure 503 {object} dto.APIResponse{data=HealthResponse}
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	response := HealthResponse{
		Status:       "ok",
		Records:      make(map[models.Category]int, len(models.Categories)),
		SessionStore: "memory",
	}
	for _, category := range models.Categories {
		response.Records[category] = c.dataset.Len(category)
	}

	status := http.StatusOK
	if c.sessionStore != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		response.SessionStore = "ok"
		if err := c.sessionStore.Ping(pingCtx); err != nil {
			logger.Warn().Err(err).Msg("Session store health check failed")
			response.Status = "degraded"
			response.SessionStore = "unavailable"
			status = http.StatusServiceUnavailable
		}
	}

	ctx.JSON(status, dto.NewAPIResponse(response))
}

// Ping answers liveness probes
func (c *HealthController) Ping(ctx *gin.Context) {
	ctx.String(http.StatusOK, "pong")
}
