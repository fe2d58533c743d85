package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"bpmapi/internal/validate"
	"bpmapi/models"
)

// GetEmployeeExpensesHandler возвращает список расходов сотрудников
func (h *Handler) GetEmployeeExpensesHandler(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Store.ListEmployeeExpenses(r.Context())
	if err != nil {
		h.Log.Error("list employee expenses failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to get employee expenses")
		return
	}

	writeJSON(w, http.StatusOK, expenses)
}

// SubmitEmployeeExpenseHandler обрабатывает POST /api/employees/expenses.
// Вся валидация выполняется до какой-либо записи в хранилище.
func (h *Handler) SubmitEmployeeExpenseHandler(w http.ResponseWriter, r *http.Request) {
	// Ограничение размера тела, чтобы избежать DoS
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	defer r.Body.Close()

	var req models.SubmitEmployeeExpenseRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if fields := validate.Struct(&req); len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	expense := models.EmployeeExpense{
		VendorName:  req.VendorName,
		Amount:      req.Amount,
		InvoiceDate: req.InvoiceDate,
		Currency:    req.Currency,
		Description: req.Description,
	}

	if err := h.Store.CreateEmployeeExpense(r.Context(), &expense); err != nil {
		h.Log.Error("create employee expense failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create employee expense")
		return
	}

	h.Log.Info("employee expense submitted",
		zap.Int("id", expense.ID), zap.String("vendor", expense.VendorName))
	writeJSON(w, http.StatusCreated, expense)
}
