package handler

import (
	"context"
	"net/http"
	"time"

	"health-tracker-server/internal/model/requestresponse"

	"go.uber.org/zap"
)

const (
	healthTimeout     = 2 * time.Second
	statusUnavailable = "unavailable"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	redis Pinger
}

func NewHealthHandler(db, redis Pinger) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

// Health godoc
// @Summary Состояние сервиса
// @Description Проверяет доступность PostgreSQL и Redis
// @Tags Health
// @Produce json
// @Success 200 {object} requestresponse.HealthResponse
// @Failure 503 {object} requestresponse.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	resp := requestresponse.HealthResponse{}
	resp.Response.Status = "ok"
	resp.Response.Database = pingStatus(ctx, "database", h.db)
	resp.Response.Redis = pingStatus(ctx, "redis", h.redis)

	statusCode := http.StatusOK
	if resp.Response.Database == statusUnavailable || resp.Response.Redis == statusUnavailable {
		resp.Response.Status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	writeResponse(w, statusCode, resp)
}

func pingStatus(ctx context.Context, name string, pinger Pinger) string {
	if pinger == nil {
		return "disabled"
	}
	if err := pinger.PingContext(ctx); err != nil {
		zap.L().Warn("[Health] зависимость недоступна", zap.String("dependency", name), zap.Error(err))
		return statusUnavailable
	}
	return "ok"
}
