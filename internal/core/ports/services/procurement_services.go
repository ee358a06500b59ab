package services

import (
	"context"

	"github.com/sutratex/bunai-backend/internal/core/domain"
	"github.com/sutratex/bunai-backend/internal/dto"
)

// VendorSvcFacade manages thread suppliers.
type VendorSvcFacade interface {
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error)
	GetVendorByID(ctx context.Context, vendorID int64) (*domain.Vendor, error)
	ListVendors(ctx context.Context, limit, offset int) ([]domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendorID int64, req dto.UpdateVendorRequest, updaterUserID string) (*domain.Vendor, error)
	DeactivateVendor(ctx context.Context, vendorID int64, updaterUserID string) error
}

// PurchaseSvcFacade manages thread purchases.
type PurchaseSvcFacade interface {
	// CreatePurchase validates the vendor and persists the purchase with
	// total = quantity * unit price and a derived payment status.
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.ThreadPurchase, error)

	GetPurchaseByID(ctx context.Context, purchaseID int64) (*domain.ThreadPurchase, error)
	ListPurchases(ctx context.Context, vendorID *int64, status *domain.PaymentStatus, limit, offset int) ([]domain.ThreadPurchase, error)

	// ReceivePurchase flags the thread as received and books the stock into
	// inventory.
	ReceivePurchase(ctx context.Context, purchaseID int64, updaterUserID string) (*domain.ThreadPurchase, error)
}
