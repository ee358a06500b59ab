package services

import (
	"context"

	"github.com/sutratex/bunai-backend/internal/core/domain"
	"github.com/sutratex/bunai-backend/internal/dto"
)

// PartySvcFacade manages vendors and customers in the khatabook schema.
type PartySvcFacade interface {
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error)
	GetPartyByID(ctx context.Context, partyID int64) (*domain.Party, error)
	ListParties(ctx context.Context, kind *domain.PartyKind, limit, offset int) ([]domain.Party, error)
	UpdateParty(ctx context.Context, partyID int64, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error)
}

// BillSvcFacade manages khatabook bills and their payment transactions.
type BillSvcFacade interface {
	// CreateBill validates the party reference and persists the bill.
	CreateBill(ctx context.Context, req dto.CreateBillRequest, creatorUserID string) (*domain.Bill, error)

	GetBillByID(ctx context.Context, billID int64) (*domain.Bill, error)
	ListBills(ctx context.Context, status *domain.PaymentStatus, partyID *int64, limit, offset int) ([]domain.Bill, error)

	// RecordTransaction records a payment against a bill. The bill's paid
	// amount and status move atomically with the transaction insert.
	RecordTransaction(ctx context.Context, billID int64, req dto.RecordTransactionRequest, creatorUserID string) (*domain.Bill, error)

	ListTransactions(ctx context.Context, billID int64) ([]domain.Transaction, error)

	// CancelBill moves a PENDING/PARTIAL bill to CANCELLED.
	CancelBill(ctx context.Context, billID int64, updaterUserID string) (*domain.Bill, error)
}
