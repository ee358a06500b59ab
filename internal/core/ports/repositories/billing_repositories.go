package repositories

import (
	"context"

	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// PartyReader defines read operations for khatabook parties.
type PartyReader interface {
	FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error)
	ListParties(ctx context.Context, kind *domain.PartyKind, limit, offset int) ([]domain.Party, error)
}

// PartyWriter defines write operations for khatabook parties.
type PartyWriter interface {
	// SaveParty persists a new party and returns its generated id.
	SaveParty(ctx context.Context, party domain.Party) (int64, error)
	UpdateParty(ctx context.Context, party domain.Party) error
}

// PartyRepositoryFacade combines all party repository interfaces.
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}

// BillReader defines read operations for khatabook bills.
type BillReader interface {
	FindBillByID(ctx context.Context, billID int64) (*domain.Bill, error)
	ListBills(ctx context.Context, status *domain.PaymentStatus, partyID *int64, limit, offset int) ([]domain.Bill, error)

	// ListAllBills streams the entire bill table for synchronization runs.
	ListAllBills(ctx context.Context) ([]domain.Bill, error)

	FindTransactionsByBillID(ctx context.Context, billID int64) ([]domain.Transaction, error)
}

// BillWriter defines write operations for khatabook bills.
type BillWriter interface {
	// SaveBill persists a new bill and returns its generated id. Duplicate
	// bill numbers yield ErrDuplicate.
	SaveBill(ctx context.Context, bill domain.Bill) (int64, error)

	// RecordTransaction inserts a payment transaction and updates the bill's
	// paid amount and status in one database transaction. The bill row is
	// locked for the duration. The updated bill is returned.
	RecordTransaction(ctx context.Context, txn domain.Transaction) (*domain.Bill, error)

	// CancelBill marks a bill CANCELLED. Fully paid bills cannot be
	// cancelled (ErrValidation).
	CancelBill(ctx context.Context, billID int64, updatedBy string) (*domain.Bill, error)
}

// BillRepositoryFacade combines all bill repository interfaces.
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}
