package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vendor is a thread supplier in the primary schema. Vendors may additionally
// appear as parties in the khatabook schema; the two are linked by usage, not
// by key.
type Vendor struct {
	VendorID int64  `json:"vendorID"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
	IsActive bool   `json:"isActive"`
	AuditFields
}

// ThreadPurchase records raw thread bought from a vendor.
type ThreadPurchase struct {
	PurchaseID   int64           `json:"purchaseID"`
	VendorID     int64           `json:"vendorID"`
	ThreadType   string          `json:"threadType"` // e.g. cotton 40s, polyester
	Color        string          `json:"color"`
	QuantityKg   decimal.Decimal `json:"quantityKg"`
	UnitPrice    decimal.Decimal `json:"unitPrice"` // per kg
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	Status       PaymentStatus   `json:"status"`
	Received     bool            `json:"received"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	AuditFields
}
