package handlers

import (
	"context"

	"bpmapi/models"
)

// StorageInterface описывает шлюз к хранилищу: реализации — db.Storage
// (PostgreSQL) и db.MemoryStorage (демо-набор в памяти).
type StorageInterface interface {
	ListAssetsByEmployee(ctx context.Context, employee string) ([]models.Asset, error)
	ListAssetTypes(ctx context.Context) ([]models.AssetType, error)
	AssetTypeExists(ctx context.Context, productID string) (bool, error)

	ListEmployeeExpenses(ctx context.Context) ([]models.EmployeeExpense, error)
	CreateEmployeeExpense(ctx context.Context, expense *models.EmployeeExpense) error

	GetTravelRequest(ctx context.Context, id int) (*models.TravelRequest, error)
	TravelRequestExists(ctx context.Context, id int) (bool, error)
	CreateTravelExpense(ctx context.Context, expense *models.TravelExpense) error

	CreatePurchaseRequest(ctx context.Context, request *models.PurchaseRequest) error

	Ping(ctx context.Context) error
	Counts(ctx context.Context) (*models.Counts, error)
}
