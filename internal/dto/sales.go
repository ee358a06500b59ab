package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// SalesOrderItemRequest is one line of a new sales order.
type SalesOrderItemRequest struct {
	ItemID    int64           `json:"itemId" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateSalesOrderRequest defines the data needed to create a sales order.
// Every line draws stock; short stock on any line fails the whole order.
type CreateSalesOrderRequest struct {
	CustomerName    string                  `json:"customerName" binding:"required"`
	CustomerContact string                  `json:"customerContact"`
	OrderDate       *time.Time              `json:"orderDate"`
	Items           []SalesOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SalesOrderItemResponse defines the data returned for an order line.
type SalesOrderItemResponse struct {
	OrderItemID int64           `json:"orderItemID"`
	ItemID      int64           `json:"itemID"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// SalesOrderResponse defines the data returned for a sales order.
type SalesOrderResponse struct {
	OrderID         int64                    `json:"orderID"`
	OrderNumber     string                   `json:"orderNumber"`
	CustomerName    string                   `json:"customerName"`
	CustomerContact string                   `json:"customerContact"`
	TotalAmount     decimal.Decimal          `json:"totalAmount"`
	PaidAmount      decimal.Decimal          `json:"paidAmount"`
	Remaining       decimal.Decimal          `json:"remainingAmount"`
	Status          string                   `json:"status"`
	DeliveryStatus  string                   `json:"deliveryStatus"`
	OrderDate       time.Time                `json:"orderDate"`
	Items           []SalesOrderItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
}

// ToSalesOrderResponse converts a domain.SalesOrder to its DTO.
func ToSalesOrderResponse(o *domain.SalesOrder) SalesOrderResponse {
	items := make([]SalesOrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = SalesOrderItemResponse{
			OrderItemID: it.OrderItemID,
			ItemID:      it.ItemID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		}
	}
	return SalesOrderResponse{
		OrderID:         o.OrderID,
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		CustomerContact: o.CustomerContact,
		TotalAmount:     o.TotalAmount,
		PaidAmount:      o.PaidAmount,
		Remaining:       domain.RemainingAmount(o.TotalAmount, o.PaidAmount),
		Status:          string(o.Status),
		DeliveryStatus:  string(o.DeliveryStatus),
		OrderDate:       o.OrderDate,
		Items:           items,
		CreatedAt:       o.CreatedAt,
	}
}

// ListSalesOrdersResponse wraps the list of sales orders.
type ListSalesOrdersResponse struct {
	Orders []SalesOrderResponse `json:"orders"`
}

// ToListSalesOrdersResponse converts sales orders to their list DTO.
func ToListSalesOrdersResponse(orders []domain.SalesOrder) ListSalesOrdersResponse {
	res := make([]SalesOrderResponse, len(orders))
	for i, o := range orders {
		res[i] = ToSalesOrderResponse(&o)
	}
	return ListSalesOrdersResponse{Orders: res}
}

// ListSalesOrdersParams defines query parameters for listing sales orders.
type ListSalesOrdersParams struct {
	ListParams
	Status         *string `form:"status"`
	DeliveryStatus *string `form:"deliveryStatus"`
}

// RecordPaymentRequest defines a payment against a sale or purchase.
type RecordPaymentRequest struct {
	TargetKind domain.PaymentTarget `json:"targetKind" binding:"required,oneof=SALE PURCHASE"`
	TargetID   int64                `json:"targetId" binding:"required"`
	Amount     decimal.Decimal      `json:"amount" binding:"required"`
	Method     domain.PaymentMethod `json:"method" binding:"required,oneof=CASH CHEQUE BANK_TRANSFER"`
	Reference  string               `json:"reference"`
}

// PaymentResponse defines the data returned for a recorded payment. Status
// is the target's payment status after the payment was applied.
type PaymentResponse struct {
	PaymentID  int64           `json:"paymentID"`
	TargetKind string          `json:"targetKind"`
	TargetID   int64           `json:"targetID"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	Reference  string          `json:"reference"`
	Status     string          `json:"status,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	ListParams
	TargetKind *string `form:"targetKind"`
	TargetID   *int64  `form:"targetId"`
}

// ListPaymentsResponse wraps the list of payments. The target status is only
// known at record time, so listings omit it.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToListPaymentsResponse converts a slice of domain.Payment to ListPaymentsResponse.
func ToListPaymentsResponse(payments []domain.Payment) ListPaymentsResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(&p, "")
	}
	return ListPaymentsResponse{Payments: res}
}

// ToPaymentResponse converts a domain.Payment plus the resulting target
// status to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment, status domain.PaymentStatus) PaymentResponse {
	return PaymentResponse{
		PaymentID:  p.PaymentID,
		TargetKind: string(p.TargetKind),
		TargetID:   p.TargetID,
		Amount:     p.Amount,
		Method:     string(p.Method),
		Reference:  p.Reference,
		Status:     string(status),
		CreatedAt:  p.CreatedAt,
	}
}
