package handlers

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"careerportal-api/utils"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function, e.g. a redis client's Ping, to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type HealthResponse struct {
	Status    string `json:"status"`
	Time      string `json:"time"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
	Uptime    string `json:"uptime"`
	GoVersion string `json:"go_version"`
}

type HealthHandler struct {
	db        Pinger
	redis     Pinger
	startTime time.Time
}

// NewHealthHandler accepts a nil redis pinger when rate limiting is off.
func NewHealthHandler(db Pinger, redis Pinger) *HealthHandler {
	return &HealthHandler{db: db, redis: redis, startTime: time.Now()}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	health := HealthResponse{
		Status:    "ok",
		Time:      time.Now().Format(time.RFC3339),
		Database:  "connected",
		Redis:     "disabled",
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		GoVersion: runtime.Version(),
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer dbCancel()
	if err := h.db.Ping(dbCtx); err != nil {
		health.Status = "degraded"
		health.Database = "error"
	}

	if h.redis != nil {
		health.Redis = "connected"
		redisCtx, redisCancel := context.WithTimeout(ctx, 500*time.Millisecond)
		defer redisCancel()
		if err := h.redis.Ping(redisCtx); err != nil {
			health.Status = "degraded"
			health.Redis = "error"
		}
	}

	utils.WriteJSON(w, http.StatusOK, health)
}
