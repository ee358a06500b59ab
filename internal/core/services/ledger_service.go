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
	"github.com/sutratex/bunai-backend/internal/ledgertag"
	"github.com/sutratex/bunai-backend/internal/middleware"
)

// LedgerService manages khatas and the unified ledger entry list.
type LedgerService struct {
	ledgerRepo portsrepo.LedgerEntryRepositoryFacade
}

func NewLedgerService(ledgerRepo portsrepo.LedgerEntryRepositoryFacade) *LedgerService {
	return &LedgerService{ledgerRepo: ledgerRepo}
}

// CreateKhata opens a new account book by inserting its KHATA sentinel row.
// The sentinel carries no money, so it is stored settled.
func (s *LedgerService) CreateKhata(ctx context.Context, req dto.CreateKhataRequest, creatorUserID string) (*domain.Khata, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	entry := domain.LedgerEntry{
		EntryType:   domain.EntryKhata,
		Status:      domain.StatusPaid,
		Description: req.Name,
		Notes:       req.Notes,
		EntryDate:   now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	khataID, err := s.ledgerRepo.SaveEntry(ctx, entry)
	if err != nil {
		logger.Error("Failed to save khata sentinel entry", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Khata created", slog.Int64("khata_id", khataID), slog.String("name", req.Name))
	return &domain.Khata{
		KhataID:   khataID,
		Name:      req.Name,
		Notes:     req.Notes,
		CreatedAt: now,
		CreatedBy: creatorUserID,
	}, nil
}

func (s *LedgerService) GetKhataByID(ctx context.Context, khataID int64) (*domain.Khata, error) {
	return s.ledgerRepo.FindKhataByID(ctx, khataID)
}

func (s *LedgerService) ListKhatas(ctx context.Context, limit, offset int) ([]domain.Khata, error) {
	khatas, err := s.ledgerRepo.ListKhatas(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list khatas: %w", err)
	}
	return khatas, nil
}

func (s *LedgerService) GetKhataSummary(ctx context.Context, khataID int64) (*domain.KhataSummary, error) {
	return s.ledgerRepo.SummarizeKhata(ctx, khataID)
}

// ListKhataEntries lists the entries tagged to a khata. The khata must exist;
// the repository applies the boundary-aware tag predicate.
func (s *LedgerService) ListKhataEntries(ctx context.Context, khataID int64, limit, offset int) ([]domain.LedgerEntry, error) {
	if _, err := s.ledgerRepo.FindKhataByID(ctx, khataID); err != nil {
		return nil, err
	}
	return s.ledgerRepo.ListEntries(ctx, domain.EntryListFilter{
		KhataID: &khataID,
		Limit:   limit,
		Offset:  offset,
	})
}

func (s *LedgerService) GetEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error) {
	return s.ledgerRepo.FindEntryByID(ctx, entryID)
}

func (s *LedgerService) ListEntries(ctx context.Context, filter domain.EntryListFilter) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListEntries(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, nil
}

// CreateEntry creates a ledger entry. A requested khata association becomes
// the "khata:<id>" tag appended to notes; the khata must exist.
func (s *LedgerService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.EntryType == domain.EntryKhata {
		return nil, fmt.Errorf("%w: khatas are created through the khata endpoint", apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount cannot be negative", apperrors.ErrValidation)
	}

	notes := req.Notes
	if req.KhataID != nil {
		if _, err := s.ledgerRepo.FindKhataByID(ctx, *req.KhataID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: khata %d does not exist", apperrors.ErrValidation, *req.KhataID)
			}
			return nil, err
		}
		if !ledgertag.HasKhata(notes, *req.KhataID) {
			notes = ledgertag.Append(notes, ledgertag.Khata(*req.KhataID))
		}
	}

	now := time.Now()
	entryDate := now
	if req.EntryDate != nil {
		entryDate = *req.EntryDate
	}

	entry := domain.LedgerEntry{
		EntryType:       req.EntryType,
		Amount:          req.Amount,
		RemainingAmount: req.Amount,
		Status:          domain.StatusPending,
		Description:     req.Description,
		Notes:           notes,
		Reference:       req.Reference,
		EntryDate:       entryDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	entryID, err := s.ledgerRepo.SaveEntry(ctx, entry)
	if err != nil {
		logger.Error("Failed to save ledger entry", slog.String("error", err.Error()))
		return nil, err
	}
	entry.EntryID = entryID

	logger.Info("Ledger entry created", slog.Int64("entry_id", entryID), slog.String("entry_type", string(entry.EntryType)))
	return &entry, nil
}

func (s *LedgerService) UpdateEntry(ctx context.Context, entryID int64, req dto.UpdateEntryRequest, updaterUserID string) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	if req.Reference != nil {
		entry.Reference = *req.Reference
	}
	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = updaterUserID

	if err := s.ledgerRepo.UpdateEntry(ctx, *entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// CancelEntry moves a PENDING or PARTIAL entry to CANCELLED.
func (s *LedgerService) CancelEntry(ctx context.Context, entryID int64, updaterUserID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.EntryType == domain.EntryKhata {
		return nil, fmt.Errorf("%w: khata sentinel entries cannot be cancelled", apperrors.ErrValidation)
	}
	if !domain.CanCancel(entry.Status) {
		return nil, fmt.Errorf("%w: entry %d cannot be cancelled from status %s", apperrors.ErrValidation, entryID, entry.Status)
	}

	entry.Status = domain.StatusCancelled
	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = updaterUserID

	if err := s.ledgerRepo.UpdateEntry(ctx, *entry); err != nil {
		logger.Error("Failed to cancel ledger entry", slog.String("error", err.Error()), slog.Int64("entry_id", entryID))
		return nil, err
	}

	logger.Info("Ledger entry cancelled", slog.Int64("entry_id", entryID))
	return entry, nil
}
