package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	LedgerRepo      LedgerEntryRepositoryFacade
	PartyRepo       PartyRepositoryFacade
	BillRepo        BillRepositoryFacade
	VendorRepo      VendorRepositoryFacade
	PurchaseRepo    PurchaseRepositoryFacade
	DyeingRepo      DyeingRepositoryFacade
	ProductionRepo  ProductionRepositoryFacade
	InventoryRepo   InventoryRepositoryFacade
	SalesRepo       SalesRepositoryFacade
	PaymentRepo     PaymentRepositoryFacade
	AnalyticsRepo   AnalyticsRepository
	UserRepo        UserRepositoryFacade
}
