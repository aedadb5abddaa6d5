package handlers

import (
    "net/http"

    "github.com/go-redis/redis/v8"

    "payment-authorizenet-api/database"
    "payment-authorizenet-api/models"
    "payment-authorizenet-api/utils"
)

type HealthHandler struct {
    db    *database.Connection
    redis *redis.Client
}

func NewHealthHandler(db *database.Connection, redis *redis.Client) *HealthHandler {
    return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
    checks := map[string]string{
        "database": "ok",
        "redis":    "ok",
    }
    status := "ok"

    if err := h.db.Ping(); err != nil {
        checks["database"] = err.Error()
        status = "degraded"
    }

    if err := h.redis.Ping(r.Context()).Err(); err != nil {
        checks["redis"] = err.Error()
        status = "degraded"
    }

    code := http.StatusOK
    if status != "ok" {
        code = http.StatusServiceUnavailable
    }

    utils.SendJSONResponse(w, code, models.APIResponse{
        Status: status,
        Data:   checks,
    })
}
