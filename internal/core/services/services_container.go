package services

import (
	portsrepo "github.com/sutratex/bunai-backend/internal/core/ports/repositories"
	portssvc "github.com/sutratex/bunai-backend/internal/core/ports/services"
	"github.com/sutratex/bunai-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(repos.LedgerRepo)
	container.Reconciliation = NewReconciliationService(repos.LedgerRepo, repos.BillRepo, cfg.DefaultKhataID)
	container.Party = NewPartyService(repos.PartyRepo)
	container.Bill = NewBillService(repos.BillRepo, repos.PartyRepo, cfg.DefaultKhataID)
	container.Vendor = NewVendorService(repos.VendorRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.VendorRepo)
	container.Dyeing = NewDyeingService(repos.DyeingRepo, repos.PurchaseRepo)
	container.Production = NewProductionService(repos.ProductionRepo, repos.DyeingRepo)
	container.Inventory = NewInventoryService(repos.InventoryRepo)
	container.Sales = NewSalesService(repos.SalesRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo)
	container.Analytics = NewAnalyticsService(repos.AnalyticsRepo)
	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg, repos.UserRepo)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.LedgerSvcFacade         = (*LedgerService)(nil)
	_ portssvc.ReconciliationSvcFacade = (*ReconciliationService)(nil)
	_ portssvc.PartySvcFacade          = (*PartyService)(nil)
	_ portssvc.BillSvcFacade           = (*BillService)(nil)
	_ portssvc.VendorSvcFacade         = (*VendorService)(nil)
	_ portssvc.PurchaseSvcFacade       = (*PurchaseService)(nil)
	_ portssvc.DyeingSvcFacade         = (*DyeingService)(nil)
	_ portssvc.ProductionSvcFacade     = (*ProductionService)(nil)
	_ portssvc.InventorySvcFacade      = (*InventoryService)(nil)
	_ portssvc.SalesSvcFacade          = (*SalesService)(nil)
	_ portssvc.PaymentSvcFacade        = (*PaymentService)(nil)
	_ portssvc.AnalyticsSvcFacade      = (*AnalyticsService)(nil)
	_ portssvc.UserSvcFacade           = (*UserService)(nil)
)
