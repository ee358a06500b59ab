package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sutratex/bunai-backend/internal/apperrors"
	"github.com/sutratex/bunai-backend/internal/core/domain"
	portsrepo "github.com/sutratex/bunai-backend/internal/core/ports/repositories"
	"github.com/sutratex/bunai-backend/internal/dto"
	"github.com/sutratex/bunai-backend/internal/middleware"
)

// PartyService manages vendors and customers in the khatabook schema.
type PartyService struct {
	partyRepo portsrepo.PartyRepositoryFacade
}

func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade) *PartyService {
	return &PartyService{partyRepo: partyRepo}
}

func (s *PartyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	party := domain.Party{
		Name:    req.Name,
		Kind:    req.Kind,
		Phone:   req.Phone,
		Address: req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	partyID, err := s.partyRepo.SaveParty(ctx, party)
	if err != nil {
		logger.Error("Failed to save party", slog.String("error", err.Error()))
		return nil, err
	}
	party.PartyID = partyID

	logger.Info("Party created", slog.Int64("party_id", partyID), slog.String("kind", string(party.Kind)))
	return &party, nil
}

func (s *PartyService) GetPartyByID(ctx context.Context, partyID int64) (*domain.Party, error) {
	return s.partyRepo.FindPartyByID(ctx, partyID)
}

func (s *PartyService) ListParties(ctx context.Context, kind *domain.PartyKind, limit, offset int) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListParties(ctx, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	return parties, nil
}

func (s *PartyService) UpdateParty(ctx context.Context, partyID int64, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		party.Name = *req.Name
	}
	if req.Phone != nil {
		party.Phone = *req.Phone
	}
	if req.Address != nil {
		party.Address = *req.Address
	}
	party.LastUpdatedAt = time.Now()
	party.LastUpdatedBy = updaterUserID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		return nil, err
	}
	return party, nil
}

// BillService manages khatabook bills and their payment transactions. It
// never writes the primary ledger; the reconciliation service mirrors bills
// over on demand.
type BillService struct {
	billRepo       portsrepo.BillRepositoryFacade
	partyRepo      portsrepo.PartyReader
	defaultKhataID int64
}

func NewBillService(billRepo portsrepo.BillRepositoryFacade, partyRepo portsrepo.PartyReader, defaultKhataID int64) *BillService {
	return &BillService{
		billRepo:       billRepo,
		partyRepo:      partyRepo,
		defaultKhataID: defaultKhataID,
	}
}

func (s *BillService) CreateBill(ctx context.Context, req dto.CreateBillRequest, creatorUserID string) (*domain.Bill, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: bill amount must be positive", apperrors.ErrValidation)
	}
	if req.PartyID != nil {
		if _, err := s.partyRepo.FindPartyByID(ctx, *req.PartyID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: party %d does not exist", apperrors.ErrValidation, *req.PartyID)
			}
			return nil, err
		}
	}

	khataID := s.defaultKhataID
	if req.KhataID != nil {
		khataID = *req.KhataID
	}

	now := time.Now()
	billDate := now
	if req.BillDate != nil {
		billDate = *req.BillDate
	}

	bill := domain.Bill{
		BillNumber:  req.BillNumber,
		PartyID:     req.PartyID,
		KhataID:     khataID,
		Amount:      req.Amount,
		Status:      domain.StatusPending,
		Description: req.Description,
		BillDate:    billDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	billID, err := s.billRepo.SaveBill(ctx, bill)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save bill", slog.String("error", err.Error()))
		}
		return nil, err
	}
	bill.BillID = billID

	logger.Info("Bill created", slog.Int64("bill_id", billID), slog.String("bill_number", bill.BillNumber))
	return &bill, nil
}

func (s *BillService) GetBillByID(ctx context.Context, billID int64) (*domain.Bill, error) {
	return s.billRepo.FindBillByID(ctx, billID)
}

func (s *BillService) ListBills(ctx context.Context, status *domain.PaymentStatus, partyID *int64, limit, offset int) ([]domain.Bill, error) {
	bills, err := s.billRepo.ListBills(ctx, status, partyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

// RecordTransaction records a payment event. The repository settles the
// bill's paid amount and status atomically with the transaction insert.
func (s *BillService) RecordTransaction(ctx context.Context, billID int64, req dto.RecordTransactionRequest, creatorUserID string) (*domain.Bill, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	direction := req.Direction
	if direction == "" {
		direction = domain.DirectionIn
	}
	method := req.Method
	if method == "" {
		method = domain.MethodCash
	}

	now := time.Now()
	txn := domain.Transaction{
		BillID:    billID,
		Amount:    req.Amount,
		Direction: direction,
		Method:    method,
		Narration: req.Narration,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	bill, err := s.billRepo.RecordTransaction(ctx, txn)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to record bill transaction", slog.String("error", err.Error()), slog.Int64("bill_id", billID))
		}
		return nil, err
	}

	logger.Info("Bill transaction recorded",
		slog.Int64("bill_id", billID),
		slog.String("status", string(bill.Status)),
	)
	return bill, nil
}

func (s *BillService) ListTransactions(ctx context.Context, billID int64) ([]domain.Transaction, error) {
	if _, err := s.billRepo.FindBillByID(ctx, billID); err != nil {
		return nil, err
	}
	return s.billRepo.FindTransactionsByBillID(ctx, billID)
}

func (s *BillService) CancelBill(ctx context.Context, billID int64, updaterUserID string) (*domain.Bill, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	bill, err := s.billRepo.CancelBill(ctx, billID, updaterUserID)
	if err != nil {
		return nil, err
	}

	logger.Info("Bill cancelled", slog.Int64("bill_id", billID))
	return bill, nil
}
