package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"bpmapi/internal/validate"
	"bpmapi/models"
)

// CreatePurchaseRequestHandler обрабатывает POST /api/purchases/requests.
// Сначала проверяется форма, затем существование каждого ProductId в
// каталоге; шапка и позиции сохраняются атомарно.
func (h *Handler) CreatePurchaseRequestHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	defer r.Body.Close()

	var req models.CreatePurchaseRequestRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if fields := validate.Struct(&req); len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	// Каждая позиция должна ссылаться на существующий тип актива
	for _, item := range req.Items {
		exists, err := h.Store.AssetTypeExists(r.Context(), item.ProductId)
		if err != nil {
			h.Log.Error("asset type lookup failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to create purchase request")
			return
		}
		if !exists {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("Asset type with ProductId '%s' not found", item.ProductId))
			return
		}
	}

	purchase := models.PurchaseRequest{
		Employee:  req.Employee,
		Requestor: req.Requestor,
		Items:     make([]models.PurchaseRequestItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		purchase.Items = append(purchase.Items, models.PurchaseRequestItem{
			ProductId: item.ProductId,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	if err := h.Store.CreatePurchaseRequest(r.Context(), &purchase); err != nil {
		h.Log.Error("create purchase request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create purchase request")
		return
	}

	h.Log.Info("purchase request created",
		zap.Int("id", purchase.ID), zap.String("employee", purchase.Employee),
		zap.Int("items", len(purchase.Items)))
	writeJSON(w, http.StatusCreated, purchase)
}
