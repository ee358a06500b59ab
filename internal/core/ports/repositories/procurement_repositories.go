package repositories

import (
	"context"
	"time"

	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// VendorReader defines read operations for vendors.
type VendorReader interface {
	FindVendorByID(ctx context.Context, vendorID int64) (*domain.Vendor, error)
	ListVendors(ctx context.Context, limit, offset int) ([]domain.Vendor, error)
}

// VendorWriter defines write operations for vendors.
type VendorWriter interface {
	SaveVendor(ctx context.Context, vendor domain.Vendor) (int64, error)
	UpdateVendor(ctx context.Context, vendor domain.Vendor) error

	// DeactivateVendor soft deletes a vendor. Already-inactive vendors yield
	// ErrValidation.
	DeactivateVendor(ctx context.Context, vendorID int64, userID string, now time.Time) error
}

// VendorRepositoryFacade combines all vendor repository interfaces.
type VendorRepositoryFacade interface {
	VendorReader
	VendorWriter
}

// PurchaseReader defines read operations for thread purchases.
type PurchaseReader interface {
	FindPurchaseByID(ctx context.Context, purchaseID int64) (*domain.ThreadPurchase, error)
	ListPurchases(ctx context.Context, vendorID *int64, status *domain.PaymentStatus, limit, offset int) ([]domain.ThreadPurchase, error)
}

// PurchaseWriter defines write operations for thread purchases.
type PurchaseWriter interface {
	SavePurchase(ctx context.Context, purchase domain.ThreadPurchase) (int64, error)

	// ReceivePurchase flags the thread as physically received and inserts
	// its inventory stock line in one transaction, so a received purchase
	// can never lose its stock. Already-received purchases yield
	// ErrValidation. The updated purchase is returned.
	ReceivePurchase(ctx context.Context, purchaseID int64, userID string, now time.Time) (*domain.ThreadPurchase, error)
}

// PurchaseRepositoryFacade combines all purchase repository interfaces.
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
