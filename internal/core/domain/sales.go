package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryStatus tracks order fulfilment separately from payment.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "PENDING"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryCancelled DeliveryStatus = "CANCELLED"
)

// SalesOrder is a fabric sale. Creating one decrements inventory and writes
// the order plus its items in a single database transaction; short stock on
// any line fails the whole order.
type SalesOrder struct {
	OrderID         int64           `json:"orderID"`
	OrderNumber     string          `json:"orderNumber"` // "SO-<seq>", unique
	CustomerName    string          `json:"customerName"`
	CustomerContact string          `json:"customerContact"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	Status          PaymentStatus   `json:"status"`
	DeliveryStatus  DeliveryStatus  `json:"deliveryStatus"`
	OrderDate       time.Time       `json:"orderDate"`
	Items           []SalesOrderItem `json:"items,omitempty"`
	AuditFields
}

// SalesOrderItem is one line of a sales order, drawing stock from an
// inventory item.
type SalesOrderItem struct {
	OrderItemID int64           `json:"orderItemID"`
	OrderID     int64           `json:"orderID"`
	ItemID      int64           `json:"itemID"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}
