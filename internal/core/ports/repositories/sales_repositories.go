package repositories

import (
	"context"
	"time"

	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// SalesReader defines read operations for sales orders.
type SalesReader interface {
	// FindOrderByID retrieves an order with its line items.
	FindOrderByID(ctx context.Context, orderID int64) (*domain.SalesOrder, error)
	ListOrders(ctx context.Context, status *domain.PaymentStatus, limit, offset int) ([]domain.SalesOrder, error)
}

// SalesWriter defines write operations for sales orders.
type SalesWriter interface {
	// SaveOrder writes the order, its items, and the corresponding inventory
	// decrements in ONE database transaction. Inventory rows are locked;
	// short stock on any line aborts the whole order with ErrValidation.
	// The generated order id is returned.
	SaveOrder(ctx context.Context, order domain.SalesOrder) (int64, error)

	// MarkOrderDelivered moves the order's delivery status to DELIVERED.
	MarkOrderDelivered(ctx context.Context, orderID int64, userID string, now time.Time) error
}

// SalesRepositoryFacade combines all sales repository interfaces.
type SalesRepositoryFacade interface {
	SalesReader
	SalesWriter
}
