package db

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"time"

	"bpmapi/models"
)

// MemoryStorage хранит коллекции в памяти и предназначен для демонстрации
// и тестов. Доступ к коллекциям защищён мьютексом, идентификаторы выдаются
// монотонными счётчиками на коллекцию.
type MemoryStorage struct {
	mu sync.RWMutex

	assets           []models.Asset
	assetTypes       []models.AssetType
	employeeExpenses []models.EmployeeExpense
	travelRequests   []models.TravelRequest
	travelExpenses   []models.TravelExpense
	purchaseRequests []models.PurchaseRequest

	nextExpenseID         int
	nextTravelExpenseID   int
	nextPurchaseRequestID int
	nextPurchaseItemID    int
}

// NewMemoryStorage создаёт хранилище, заполненное посевными данными.
func NewMemoryStorage() *MemoryStorage {
	now := time.Now()
	return &MemoryStorage{
		assetTypes: []models.AssetType{
			{ProductId: "LAPTOP-DL-7420", Description: "Dell Latitude 7420 Business Laptop", Specs: "Intel i7-1185G7, 16GB RAM, 512GB SSD, 14-inch FHD", Price: 1899.99},
			{ProductId: "MON-LG-34WN", Description: "LG UltraWide 34-inch Curved Monitor", Specs: "3440x1440 resolution, USB-C, HDR10", Price: 699.99},
			{ProductId: "DESK-SD-001", Description: "Standing Desk - Electric Height Adjustable", Specs: "48x24 inch surface, Memory settings, Cable management", Price: 599.99},
			{ProductId: "CHAIR-ERG-01", Description: "Ergonomic Office Chair with Lumbar Support", Specs: "Mesh back, Adjustable armrests, 5-year warranty", Price: 449.99},
			{ProductId: "PHONE-IP15P", Description: "iPhone 15 Pro", Specs: "128GB, Titanium, A17 Pro chip", Price: 999.99},
		},
		assets: []models.Asset{
			{AssetNo: "LAPTOP001", Description: "Dell Latitude 7420 Laptop", Category: "Computer Equipment", Employee: "john.doe", IsForReplacement: false},
			{AssetNo: "DESK001", Description: "Standing Desk - Height Adjustable", Category: "Office Furniture", Employee: "john.doe", IsForReplacement: false},
			{AssetNo: "MON002", Description: "LG UltraWide 34-inch Monitor", Category: "Computer Equipment", Employee: "jane.smith", IsForReplacement: true},
		},
		travelRequests: []models.TravelRequest{
			{
				ID: 1, Type: "Business", Purpose: "Client meeting and conference",
				DepartureCity: "New York", DepartureDate: now.AddDate(0, 0, 10),
				DestinationCity: "Los Angeles", ReturnDate: now.AddDate(0, 0, 15),
				RequestId: "TR-2024-001", RequestDate: now.AddDate(0, 0, -5),
			},
			{
				ID: 2, Type: "Training", Purpose: "Technical training workshop",
				DepartureCity: "Chicago", DepartureDate: now.AddDate(0, 0, 20),
				DestinationCity: "San Francisco", ReturnDate: now.AddDate(0, 0, 22),
				RequestId: "TR-2024-002", RequestDate: now.AddDate(0, 0, -2),
			},
		},
		employeeExpenses: []models.EmployeeExpense{
			{ID: 1, VendorName: "Office Supplies Inc.", Amount: 145.75, InvoiceDate: now.AddDate(0, 0, -5), Currency: "USD", Description: "Office supplies and stationery"},
			{ID: 2, VendorName: "TechCorp Solutions", Amount: 2299.99, InvoiceDate: now.AddDate(0, 0, -10), Currency: "USD", Description: "Laptop repair and maintenance"},
			{ID: 3, VendorName: "Travel Express", Amount: 350.50, InvoiceDate: now.AddDate(0, 0, -3), Currency: "USD", Description: "Business trip transportation"},
			{ID: 4, VendorName: "Conference Center LLC", Amount: 85.00, InvoiceDate: now.AddDate(0, 0, -7), Currency: "USD", Description: "Training workshop registration"},
		},
		nextExpenseID:         5,
		nextTravelExpenseID:   1,
		nextPurchaseRequestID: 1,
		nextPurchaseItemID:    1,
	}
}

func (s *MemoryStorage) ListAssetsByEmployee(ctx context.Context, employee string) ([]models.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assets := []models.Asset{}
	for _, a := range s.assets {
		if strings.EqualFold(a.Employee, employee) {
			assets = append(assets, a)
		}
	}
	return assets, nil
}

func (s *MemoryStorage) ListAssetTypes(ctx context.Context) ([]models.AssetType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	types := make([]models.AssetType, len(s.assetTypes))
	copy(types, s.assetTypes)
	return types, nil
}

func (s *MemoryStorage) AssetTypeExists(ctx context.Context, productID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, at := range s.assetTypes {
		if at.ProductId == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStorage) ListEmployeeExpenses(ctx context.Context) ([]models.EmployeeExpense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	expenses := make([]models.EmployeeExpense, len(s.employeeExpenses))
	copy(expenses, s.employeeExpenses)
	return expenses, nil
}

func (s *MemoryStorage) CreateEmployeeExpense(ctx context.Context, e *models.EmployeeExpense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextExpenseID
	s.nextExpenseID++
	s.employeeExpenses = append(s.employeeExpenses, *e)
	return nil
}

func (s *MemoryStorage) GetTravelRequest(ctx context.Context, id int) (*models.TravelRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tr := range s.travelRequests {
		if tr.ID == id {
			t := tr
			return &t, nil
		}
	}
	// Тот же сигнальный not found, что и у реляционного бэкенда
	return nil, sql.ErrNoRows
}

func (s *MemoryStorage) TravelRequestExists(ctx context.Context, id int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tr := range s.travelRequests {
		if tr.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStorage) CreateTravelExpense(ctx context.Context, e *models.TravelExpense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextTravelExpenseID
	s.nextTravelExpenseID++
	s.travelExpenses = append(s.travelExpenses, *e)
	return nil
}

func (s *MemoryStorage) CreatePurchaseRequest(ctx context.Context, pr *models.PurchaseRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pr.ID = s.nextPurchaseRequestID
	s.nextPurchaseRequestID++
	for i := range pr.Items {
		pr.Items[i].ID = s.nextPurchaseItemID
		s.nextPurchaseItemID++
	}
	stored := *pr
	stored.Items = make([]models.PurchaseRequestItem, len(pr.Items))
	copy(stored.Items, pr.Items)
	s.purchaseRequests = append(s.purchaseRequests, stored)
	return nil
}

func (s *MemoryStorage) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStorage) Counts(ctx context.Context) (*models.Counts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &models.Counts{
		AssetTypes:       len(s.assetTypes),
		EmployeeExpenses: len(s.employeeExpenses),
		TravelRequests:   len(s.travelRequests),
	}, nil
}
