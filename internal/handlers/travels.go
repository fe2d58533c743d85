package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"bpmapi/internal/validate"
	"bpmapi/models"
)

// GetTravelRequestHandler возвращает заявку на командировку по id из пути
func (h *Handler) GetTravelRequestHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid travel request ID")
		return
	}

	travelRequest, err := h.Store.GetTravelRequest(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound,
				fmt.Sprintf("Travel request with ID %d not found", id))
			return
		}
		h.Log.Error("get travel request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to get travel request")
		return
	}

	writeJSON(w, http.StatusOK, travelRequest)
}

// SubmitTravelExpenseHandler обрабатывает POST /api/travels/expenses.
// Расход принимается только для существующей заявки TravelRequest.
func (h *Handler) SubmitTravelExpenseHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	defer r.Body.Close()

	var req models.SubmitTravelExpenseRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if fields := validate.Struct(&req); len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	exists, err := h.Store.TravelRequestExists(r.Context(), req.TravelRequestId)
	if err != nil {
		h.Log.Error("travel request lookup failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create travel expense")
		return
	}
	if !exists {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Travel request with ID %d not found", req.TravelRequestId))
		return
	}

	expense := models.TravelExpense{
		TravelRequestId: req.TravelRequestId,
		VendorName:      req.VendorName,
		Amount:          req.Amount,
		InvoiceDate:     req.InvoiceDate,
		Currency:        req.Currency,
		Description:     req.Description,
	}

	if err := h.Store.CreateTravelExpense(r.Context(), &expense); err != nil {
		h.Log.Error("create travel expense failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create travel expense")
		return
	}

	h.Log.Info("travel expense submitted",
		zap.Int("id", expense.ID), zap.Int("travelRequestId", expense.TravelRequestId))
	writeJSON(w, http.StatusCreated, expense)
}
