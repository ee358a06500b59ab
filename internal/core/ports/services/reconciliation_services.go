package services

import (
	"context"

	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// ReconciliationSvcFacade is the translation layer between the khatabook
// schema and the unified ledger view: a manually triggered, best-effort copy
// plus the default-khata repair pass. Neither operation is transactional
// across the two schemas.
type ReconciliationSvcFacade interface {
	// SyncBills copies khatabook bills into ledger entries. Idempotent by
	// reference equality ("BILL-<number>"); per-row failures are logged and
	// counted, never fatal.
	SyncBills(ctx context.Context) (*domain.SyncResult, error)

	// BackfillDefaultKhata tags every entry lacking a khata tag with the
	// configured default khata, so it appears in the default book view.
	BackfillDefaultKhata(ctx context.Context) (*domain.BackfillResult, error)
}
