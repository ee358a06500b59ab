package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sutratex/bunai-backend/internal/apperrors"
	"github.com/sutratex/bunai-backend/internal/core/domain"
	portsrepo "github.com/sutratex/bunai-backend/internal/core/ports/repositories"
	"github.com/sutratex/bunai-backend/internal/ledgertag"
	"github.com/sutratex/bunai-backend/internal/middleware"
)

// ReconciliationService copies khatabook bills into the unified ledger and
// repairs entries that lost their khata association. Both operations are
// best-effort: the two stores sit behind separate pools, so there is no
// cross-store transaction and a mid-run failure leaves divergence that the
// next run repairs.
type ReconciliationService struct {
	ledgerRepo     portsrepo.LedgerEntryRepositoryFacade
	billRepo       portsrepo.BillReader
	defaultKhataID int64
}

func NewReconciliationService(ledgerRepo portsrepo.LedgerEntryRepositoryFacade, billRepo portsrepo.BillReader, defaultKhataID int64) *ReconciliationService {
	return &ReconciliationService{
		ledgerRepo:     ledgerRepo,
		billRepo:       billRepo,
		defaultKhataID: defaultKhataID,
	}
}

// billReference is the idempotence key for a synced bill.
func billReference(billNumber string) string {
	return "BILL-" + billNumber
}

// SyncBills walks the whole bill table and inserts a ledger entry for every
// bill that has none yet, matched by reference equality. A bill that fails
// is logged, counted and skipped; the run always finishes.
func (s *ReconciliationService) SyncBills(ctx context.Context) (*domain.SyncResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	started := time.Now()

	bills, err := s.billRepo.ListAllBills(ctx)
	if err != nil {
		logger.Error("Failed to list bills for sync", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	result := &domain.SyncResult{}
	for _, bill := range bills {
		synced, err := s.syncOne(ctx, bill, started)
		if err != nil {
			logger.Warn("Failed to sync bill",
				slog.String("bill_number", bill.BillNumber),
				slog.String("error", err.Error()),
			)
			result.Failed++
			continue
		}
		if synced {
			result.Synced++
		} else {
			result.Skipped++
		}
	}

	logger.Info("Bill sync finished",
		slog.Int("synced", result.Synced),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
		slog.Duration("took", time.Since(started)),
	)
	return result, nil
}

func (s *ReconciliationService) syncOne(ctx context.Context, bill domain.Bill, now time.Time) (bool, error) {
	reference := billReference(bill.BillNumber)

	_, err := s.ledgerRepo.FindEntryByReference(ctx, reference)
	if err == nil {
		return false, nil // already mirrored
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return false, err
	}

	khataID := bill.KhataID
	if khataID <= 0 {
		khataID = s.defaultKhataID
	}

	tags := []string{
		ledgertag.Khata(khataID),
		ledgertag.Party(bill.PartyID),
		ledgertag.SyncedAt(now),
	}

	entry := domain.LedgerEntry{
		EntryType:       domain.EntryBill,
		Amount:          bill.Amount,
		RemainingAmount: domain.RemainingAmount(bill.Amount, bill.PaidAmount),
		Status:          domain.NextPaymentStatus(bill.Status, bill.Amount, bill.PaidAmount),
		Description:     bill.Description,
		Notes:           strings.Join(tags, " "),
		Reference:       reference,
		EntryDate:       bill.BillDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     bill.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: bill.CreatedBy,
		},
	}

	if _, err := s.ledgerRepo.SaveEntry(ctx, entry); err != nil {
		return false, err
	}
	return true, nil
}

// backfillBatchSize bounds one repository read; the loop drains until the
// repository reports no untagged entries left.
const backfillBatchSize = 500

// BackfillDefaultKhata tags every entry that carries no khata tag in either
// free-text field with the configured default khata, so it shows up in the
// default book. Running it twice is a no-op: tagged entries no longer match
// the scan.
func (s *ReconciliationService) BackfillDefaultKhata(ctx context.Context) (*domain.BackfillResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.ledgerRepo.FindKhataByID(ctx, s.defaultKhataID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: default khata %d does not exist", apperrors.ErrValidation, s.defaultKhataID)
		}
		return nil, err
	}

	tag := ledgertag.Khata(s.defaultKhataID)
	result := &domain.BackfillResult{KhataID: s.defaultKhataID}

	for {
		entries, err := s.ledgerRepo.ListEntriesWithoutKhataTag(ctx, backfillBatchSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list untagged entries: %w", err)
		}
		if len(entries) == 0 {
			break
		}

		progressed := false
		for _, entry := range entries {
			entry.Notes = ledgertag.Append(entry.Notes, tag)
			entry.Reference = ledgertag.Append(entry.Reference, tag)
			entry.LastUpdatedAt = time.Now()

			if err := s.ledgerRepo.UpdateEntry(ctx, entry); err != nil {
				logger.Warn("Failed to backfill entry",
					slog.Int64("entry_id", entry.EntryID),
					slog.String("error", err.Error()),
				)
				continue
			}
			result.Tagged++
			progressed = true
		}

		// Every entry in the batch failed; bail out rather than spin on the
		// same rows.
		if !progressed {
			return result, fmt.Errorf("backfill made no progress over %d entries", len(entries))
		}
	}

	logger.Info("Default khata backfill finished",
		slog.Int("tagged", result.Tagged),
		slog.Int64("khata_id", result.KhataID),
	)
	return result, nil
}
