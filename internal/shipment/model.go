package shipment

import (
	"time"

	"logisa-be/internal/catalog"
	"logisa-be/internal/user"
)

type Status string

const (
	StatusProcessing    Status = "processing"
	StatusGoodsReceived Status = "goods received"
	StatusCancelled     Status = "cancelled"
)

type StockStatus string

const (
	StockUnrestricted StockStatus = "unrestricted"
	StockBlocked      StockStatus = "blocked"
	StockQuarantined  StockStatus = "quarantined"
)

// GoodsReceipt records an inbound booking against a ship item. Receipt
// quantities are not reconciled against the item quantity; partial and
// over-receipt are both accepted.
type GoodsReceipt struct {
	ID          string      `json:"id"`
	ShipItemID  string      `json:"ship_item_id"`
	Quantity    int         `json:"quantity"`
	ReceiptDate time.Time   `json:"receipt_date"`
	BatchNumber string      `json:"batch_number"`
	StockStatus StockStatus `json:"stock_status"`
}

type ShipItem struct {
	ID           string           `json:"id"`
	MaterialID   string           `json:"material_id"`
	Material     catalog.Material `json:"material"`
	Quantity     int              `json:"quantity"`
	BatchNumber  string           `json:"batch_number"`
	DeliveryDate time.Time        `json:"delivery_date"`
	Receipts     []GoodsReceipt   `json:"receipts"`
}

type ShipNotification struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	User         *user.User `json:"user,omitempty"`
	CompanyID    string     `json:"company_id"`
	Items        []ShipItem `json:"items"`
	Status       Status     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
}

func ValidStockStatus(s StockStatus) bool {
	switch s {
	case StockUnrestricted, StockBlocked, StockQuarantined:
		return true
	}
	return false
}
