package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bpmapi/models"
)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

// Assets (Активы)

func (s *Storage) ListAssetsByEmployee(ctx context.Context, employee string) ([]models.Asset, error) {
	// Сопоставление сотрудника без учёта регистра
	query := `
        SELECT asset_no, description, category, employee, is_for_replacement
        FROM asset
        WHERE LOWER(employee) = LOWER($1)
        ORDER BY asset_no`
	assets := []models.Asset{}
	err := s.db.SelectContext(ctx, &assets, query, employee)
	return assets, err
}

func (s *Storage) ListAssetTypes(ctx context.Context) ([]models.AssetType, error) {
	query := `
        SELECT product_id, description, specs, price
        FROM asset_type
        ORDER BY product_id`
	types := []models.AssetType{}
	err := s.db.SelectContext(ctx, &types, query)
	return types, err
}

func (s *Storage) AssetTypeExists(ctx context.Context, productID string) (bool, error) {
	var count int
	query := `SELECT COUNT(1) FROM asset_type WHERE product_id = $1`
	if err := s.db.GetContext(ctx, &count, query, productID); err != nil {
		return false, err
	}
	return count > 0, nil
}

// EmployeeExpense (Расходы сотрудников)

func (s *Storage) ListEmployeeExpenses(ctx context.Context) ([]models.EmployeeExpense, error) {
	query := `
        SELECT id, vendor_name, amount, invoice_date, currency, description
        FROM employee_expense
        ORDER BY id`
	expenses := []models.EmployeeExpense{}
	err := s.db.SelectContext(ctx, &expenses, query)
	return expenses, err
}

func (s *Storage) CreateEmployeeExpense(ctx context.Context, e *models.EmployeeExpense) error {
	query := `
        INSERT INTO employee_expense (vendor_name, amount, invoice_date, currency, description)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`
	return s.db.QueryRowContext(ctx, query,
		e.VendorName, e.Amount, e.InvoiceDate, e.Currency, e.Description).
		Scan(&e.ID)
}

// TravelRequest / TravelExpense (Командировки)

func (s *Storage) GetTravelRequest(ctx context.Context, id int) (*models.TravelRequest, error) {
	t := &models.TravelRequest{}
	query := `SELECT * FROM travel_request WHERE id = $1`
	err := s.db.GetContext(ctx, t, query, id)
	return t, err
}

func (s *Storage) TravelRequestExists(ctx context.Context, id int) (bool, error) {
	var count int
	query := `SELECT COUNT(1) FROM travel_request WHERE id = $1`
	if err := s.db.GetContext(ctx, &count, query, id); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Storage) CreateTravelExpense(ctx context.Context, e *models.TravelExpense) error {
	query := `
        INSERT INTO travel_expense
            (travel_request_id, vendor_name, amount, invoice_date, currency, description)
        VALUES
            ($1, $2, $3, $4, $5, $6)
        RETURNING id`
	return s.db.QueryRowContext(ctx, query,
		e.TravelRequestId, e.VendorName, e.Amount, e.InvoiceDate, e.Currency, e.Description).
		Scan(&e.ID)
}

// PurchaseRequest (Заявки на закупку)

// CreatePurchaseRequest сохраняет шапку заявки вместе со всеми позициями
// в одной транзакции: либо фиксируется всё, либо ничего.
func (s *Storage) CreatePurchaseRequest(ctx context.Context, pr *models.PurchaseRequest) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	headerQuery := `
        INSERT INTO purchase_request (employee, requestor)
        VALUES ($1, $2)
        RETURNING id`
	if err := tx.QueryRowContext(ctx, headerQuery, pr.Employee, pr.Requestor).Scan(&pr.ID); err != nil {
		return err
	}

	itemQuery := `
        INSERT INTO purchase_request_item (purchase_request_id, product_id, price, quantity)
        VALUES ($1, $2, $3, $4)
        RETURNING id`
	for i := range pr.Items {
		item := &pr.Items[i]
		if err := tx.QueryRowContext(ctx, itemQuery,
			pr.ID, item.ProductId, item.Price, item.Quantity).
			Scan(&item.ID); err != nil {
			return fmt.Errorf("insert item %q: %w", item.ProductId, err)
		}
	}

	return tx.Commit()
}

// Health (Служебные запросы)

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Counts(ctx context.Context) (*models.Counts, error) {
	c := &models.Counts{}
	query := `
        SELECT
            (SELECT COUNT(1) FROM asset_type)       AS asset_types,
            (SELECT COUNT(1) FROM employee_expense) AS employee_expenses,
            (SELECT COUNT(1) FROM travel_request)   AS travel_requests`
	err := s.db.QueryRowContext(ctx, query).
		Scan(&c.AssetTypes, &c.EmployeeExpenses, &c.TravelRequests)
	return c, err
}
