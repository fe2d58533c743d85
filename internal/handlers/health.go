package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"bpmapi/models"
)

// HealthResponse — ответ health-проверки
type HealthResponse struct {
	Status    string        `json:"status"`
	Database  string        `json:"database"`
	Counts    models.Counts `json:"counts"`
	Timestamp time.Time     `json:"timestamp"`
}

// problem — пара title/detail для деградированного ответа
type problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// HealthHandler проверяет доступность хранилища и возвращает счётчики
// записей. Недоступная база даёт 503, а не панику.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.Store.Ping(ctx); err != nil {
		h.Log.Error("health check: storage unreachable", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, problem{
			Title:  "Database Connection Failed",
			Detail: truncateDetail(err.Error()),
		})
		return
	}

	counts, err := h.Store.Counts(ctx)
	if err != nil {
		h.Log.Error("health check: count queries failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, problem{
			Title:  "Health Check Failed",
			Detail: truncateDetail(err.Error()),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "Healthy",
		Database:  "Connected",
		Counts:    *counts,
		Timestamp: time.Now().UTC(),
	})
}

// truncateDetail ограничивает деталь ошибки, чтобы не светить полную
// строку подключения наружу
func truncateDetail(s string) string {
	const limit = 120
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
