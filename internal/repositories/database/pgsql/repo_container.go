package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/sutratex/bunai-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to its pool. The khatabook
// tables live behind their own connection (ledgerPool); everything else uses
// the primary pool. Analytics spans both.
func NewRepositoryProvider(primaryPool, ledgerPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:     newPgxLedgerEntryRepository(primaryPool),
		PartyRepo:      newPgxPartyRepository(ledgerPool),
		BillRepo:       newPgxBillRepository(ledgerPool),
		VendorRepo:     newPgxVendorRepository(primaryPool),
		PurchaseRepo:   newPgxPurchaseRepository(primaryPool),
		DyeingRepo:     newPgxDyeingRepository(primaryPool),
		ProductionRepo: newPgxProductionRepository(primaryPool),
		InventoryRepo:  newPgxInventoryRepository(primaryPool),
		SalesRepo:      newPgxSalesRepository(primaryPool),
		PaymentRepo:    newPgxPaymentRepository(primaryPool),
		AnalyticsRepo:  newPgxAnalyticsRepository(primaryPool, ledgerPool),
		UserRepo:       newPgxUserRepository(primaryPool),
	}
}
