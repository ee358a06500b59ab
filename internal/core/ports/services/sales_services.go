package services

import (
	"context"

	"github.com/sutratex/bunai-backend/internal/core/domain"
	"github.com/sutratex/bunai-backend/internal/dto"
)

// SalesSvcFacade manages fabric sales orders.
type SalesSvcFacade interface {
	// CreateOrder prices the lines, assigns the next order number, and
	// commits order, items and inventory decrements atomically.
	CreateOrder(ctx context.Context, req dto.CreateSalesOrderRequest, creatorUserID string) (*domain.SalesOrder, error)

	GetOrderByID(ctx context.Context, orderID int64) (*domain.SalesOrder, error)
	ListOrders(ctx context.Context, status *domain.PaymentStatus, limit, offset int) ([]domain.SalesOrder, error)

	// MarkDelivered moves the order's delivery status to DELIVERED.
	MarkDelivered(ctx context.Context, orderID int64, updaterUserID string) error
}

// PaymentSvcFacade records payments against sales orders and purchases.
type PaymentSvcFacade interface {
	// RecordPayment persists the payment and settles its target atomically.
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, creatorUserID string) (*domain.Payment, domain.PaymentStatus, error)

	ListPayments(ctx context.Context, targetKind *domain.PaymentTarget, targetID *int64, limit, offset int) ([]domain.Payment, error)
}

// AnalyticsSvcFacade produces the dashboard aggregates.
type AnalyticsSvcFacade interface {
	// GetDashboard assembles the dashboard. Sub-query failures zero their
	// section and flip PartialData instead of failing the request.
	GetDashboard(ctx context.Context) (*domain.Dashboard, error)
}
