package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// GetAssetsByEmployeeHandler возвращает активы сотрудника из query-параметра employee.
// Сопоставление без учёта регистра; пустой результат — не ошибка.
func (h *Handler) GetAssetsByEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	employee := strings.TrimSpace(r.URL.Query().Get("employee"))
	if employee == "" {
		writeError(w, http.StatusBadRequest, "Employee parameter is required")
		return
	}

	assets, err := h.Store.ListAssetsByEmployee(r.Context(), employee)
	if err != nil {
		h.Log.Error("list assets failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to get assets")
		return
	}

	writeJSON(w, http.StatusOK, assets)
}

// GetAssetTypesHandler возвращает весь каталог типов активов
func (h *Handler) GetAssetTypesHandler(w http.ResponseWriter, r *http.Request) {
	types, err := h.Store.ListAssetTypes(r.Context())
	if err != nil {
		h.Log.Error("list asset types failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to get asset types")
		return
	}

	writeJSON(w, http.StatusOK, types)
}
