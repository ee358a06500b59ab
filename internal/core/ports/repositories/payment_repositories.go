package repositories

import (
	"context"

	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// PaymentReader defines read operations for recorded payments.
type PaymentReader interface {
	ListPayments(ctx context.Context, targetKind *domain.PaymentTarget, targetID *int64, limit, offset int) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payments.
type PaymentWriter interface {
	// RecordPayment inserts the payment row and settles its target (sales
	// order or thread purchase) in ONE database transaction: the target row
	// is locked, paid amount accumulated, and status re-derived. The saved
	// payment and the target's new status are returned. A missing target
	// yields ErrNotFound; a CANCELLED target yields ErrValidation.
	RecordPayment(ctx context.Context, payment domain.Payment) (*domain.Payment, domain.PaymentStatus, error)
}

// PaymentRepositoryFacade combines all payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
