package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Handler оборачивает шлюз хранилища для доступа к данным
type Handler struct {
	Store StorageInterface
	Log   *zap.Logger
}

// NewHandler создает новый Handler
func NewHandler(store StorageInterface, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Store: store, Log: log}
}

// PingHandler отвечает "ok" для проверки сервера
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError отдаёт {"error": msg}
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeFieldErrors отдаёт полный набор нарушений по полям, не только первое
func writeFieldErrors(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": fields})
}
