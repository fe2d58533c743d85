package models

import "time"

// Актив, закреплённый за сотрудником
type Asset struct {
	AssetNo          string `db:"asset_no" json:"assetNo"`
	Description      string `db:"description" json:"description"`
	Category         string `db:"category" json:"category"`
	Employee         string `db:"employee" json:"employee"`
	IsForReplacement bool   `db:"is_for_replacement" json:"isForReplacement"`
}

// Тип актива из каталога закупок
type AssetType struct {
	ProductId   string  `db:"product_id" json:"productId"`
	Description string  `db:"description" json:"description"`
	Specs       string  `db:"specs" json:"specs"`
	Price       float64 `db:"price" json:"price"`
}

// Расход сотрудника
type EmployeeExpense struct {
	ID          int       `db:"id" json:"id"`
	VendorName  string    `db:"vendor_name" json:"vendorName"`
	Amount      float64   `db:"amount" json:"amount"`
	InvoiceDate time.Time `db:"invoice_date" json:"invoiceDate"`
	Currency    string    `db:"currency" json:"currency"`
	Description string    `db:"description" json:"description"`
}

// Заявка на командировку
type TravelRequest struct {
	ID              int       `db:"id" json:"id"`
	Type            string    `db:"type" json:"type"`
	Purpose         string    `db:"purpose" json:"purpose"`
	DepartureCity   string    `db:"departure_city" json:"departureCity"`
	DepartureDate   time.Time `db:"departure_date" json:"departureDate"`
	DestinationCity string    `db:"destination_city" json:"destinationCity"`
	ReturnDate      time.Time `db:"return_date" json:"returnDate"`
	RequestId       string    `db:"request_id" json:"requestId"`
	RequestDate     time.Time `db:"request_date" json:"requestDate"`
}

// Командировочный расход, ссылается на заявку TravelRequest
type TravelExpense struct {
	ID              int       `db:"id" json:"id"`
	TravelRequestId int       `db:"travel_request_id" json:"travelRequestId"`
	VendorName      string    `db:"vendor_name" json:"vendorName"`
	Amount          float64   `db:"amount" json:"amount"`
	InvoiceDate     time.Time `db:"invoice_date" json:"invoiceDate"`
	Currency        string    `db:"currency" json:"currency"`
	Description     string    `db:"description" json:"description"`
}

// Заявка на закупку, владеет своими позициями (каскадное удаление)
type PurchaseRequest struct {
	ID        int                   `db:"id" json:"id"`
	Employee  string                `db:"employee" json:"employee"`
	Requestor string                `db:"requestor" json:"requestor"`
	Items     []PurchaseRequestItem `db:"-" json:"items"`
}

// Позиция заявки на закупку
type PurchaseRequestItem struct {
	ID        int     `db:"id" json:"id"`
	ProductId string  `db:"product_id" json:"productId"`
	Price     float64 `db:"price" json:"price"`
	Quantity  int     `db:"quantity" json:"quantity"`
}

// Счётчики записей для health-проверки
type Counts struct {
	AssetTypes       int `json:"assetTypes"`
	EmployeeExpenses int `json:"employeeExpenses"`
	TravelRequests   int `json:"travelRequests"`
}

// Входная форма расхода сотрудника
type SubmitEmployeeExpenseRequest struct {
	VendorName  string    `json:"vendorName" validate:"required,max=100"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	InvoiceDate time.Time `json:"invoiceDate" validate:"required,notfuture"`
	Currency    string    `json:"currency" validate:"required,len=3,alpha,uppercase"`
	Description string    `json:"description" validate:"required,min=5,max=500"`
}

// Входная форма командировочного расхода
type SubmitTravelExpenseRequest struct {
	TravelRequestId int       `json:"travelRequestId" validate:"required,gt=0"`
	VendorName      string    `json:"vendorName" validate:"required,max=100"`
	Amount          float64   `json:"amount" validate:"required,gt=0"`
	InvoiceDate     time.Time `json:"invoiceDate" validate:"required"`
	Currency        string    `json:"currency" validate:"required,len=3,alpha,uppercase"`
	Description     string    `json:"description" validate:"required,min=5,max=500"`
}

// Входная форма заявки на закупку
type CreatePurchaseRequestRequest struct {
	Employee  string                             `json:"employee" validate:"required,max=50"`
	Requestor string                             `json:"requestor" validate:"required,max=50"`
	Items     []CreatePurchaseRequestItemRequest `json:"items" validate:"required,min=1,dive"`
}

// Позиция входной формы заявки на закупку
type CreatePurchaseRequestItemRequest struct {
	ProductId string  `json:"productId" validate:"required,max=50"`
	Price     float64 `json:"price" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
}
