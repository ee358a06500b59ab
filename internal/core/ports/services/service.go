package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Ledger         LedgerSvcFacade
	Reconciliation ReconciliationSvcFacade
	Party          PartySvcFacade
	Bill           BillSvcFacade
	Vendor         VendorSvcFacade
	Purchase       PurchaseSvcFacade
	Dyeing         DyeingSvcFacade
	Production     ProductionSvcFacade
	Inventory      InventorySvcFacade
	Sales          SalesSvcFacade
	Payment        PaymentSvcFacade
	Analytics      AnalyticsSvcFacade
	User           UserSvcFacade
	TokenService   TokenSvcFacade
}
