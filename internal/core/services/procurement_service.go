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

// VendorService manages thread suppliers.
type VendorService struct {
	vendorRepo portsrepo.VendorRepositoryFacade
}

func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

func (s *VendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	vendor := domain.Vendor{
		Name:     req.Name,
		Contact:  req.Contact,
		Address:  req.Address,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	vendorID, err := s.vendorRepo.SaveVendor(ctx, vendor)
	if err != nil {
		logger.Error("Failed to save vendor", slog.String("error", err.Error()))
		return nil, err
	}
	vendor.VendorID = vendorID

	logger.Info("Vendor created", slog.Int64("vendor_id", vendorID))
	return &vendor, nil
}

func (s *VendorService) GetVendorByID(ctx context.Context, vendorID int64) (*domain.Vendor, error) {
	return s.vendorRepo.FindVendorByID(ctx, vendorID)
}

func (s *VendorService) ListVendors(ctx context.Context, limit, offset int) ([]domain.Vendor, error) {
	vendors, err := s.vendorRepo.ListVendors(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}

func (s *VendorService) UpdateVendor(ctx context.Context, vendorID int64, req dto.UpdateVendorRequest, updaterUserID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.Contact != nil {
		vendor.Contact = *req.Contact
	}
	if req.Address != nil {
		vendor.Address = *req.Address
	}
	vendor.LastUpdatedAt = time.Now()
	vendor.LastUpdatedBy = updaterUserID

	if err := s.vendorRepo.UpdateVendor(ctx, *vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *VendorService) DeactivateVendor(ctx context.Context, vendorID int64, updaterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.vendorRepo.DeactivateVendor(ctx, vendorID, updaterUserID, time.Now()); err != nil {
		return err
	}

	logger.Info("Vendor deactivated", slog.Int64("vendor_id", vendorID))
	return nil
}

// PurchaseService manages thread purchases. Receiving a purchase books the
// thread into inventory.
type PurchaseService struct {
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	vendorRepo   portsrepo.VendorReader
}

func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, vendorRepo portsrepo.VendorReader) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		vendorRepo:   vendorRepo,
	}
}

func (s *PurchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.ThreadPurchase, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.QuantityKg.IsPositive() || !req.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: quantity and unit price must be positive", apperrors.ErrValidation)
	}

	vendor, err := s.vendorRepo.FindVendorByID(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: vendor %d does not exist", apperrors.ErrValidation, req.VendorID)
		}
		return nil, err
	}
	if !vendor.IsActive {
		return nil, fmt.Errorf("%w: vendor %d is inactive", apperrors.ErrValidation, req.VendorID)
	}

	now := time.Now()
	purchaseDate := now
	if req.PurchaseDate != nil {
		purchaseDate = *req.PurchaseDate
	}

	total := req.QuantityKg.Mul(req.UnitPrice)
	purchase := domain.ThreadPurchase{
		VendorID:     req.VendorID,
		ThreadType:   req.ThreadType,
		Color:        req.Color,
		QuantityKg:   req.QuantityKg,
		UnitPrice:    req.UnitPrice,
		TotalAmount:  total,
		Status:       domain.StatusPending,
		PurchaseDate: purchaseDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	purchaseID, err := s.purchaseRepo.SavePurchase(ctx, purchase)
	if err != nil {
		logger.Error("Failed to save purchase", slog.String("error", err.Error()))
		return nil, err
	}
	purchase.PurchaseID = purchaseID

	logger.Info("Thread purchase created", slog.Int64("purchase_id", purchaseID), slog.Int64("vendor_id", req.VendorID))
	return &purchase, nil
}

func (s *PurchaseService) GetPurchaseByID(ctx context.Context, purchaseID int64) (*domain.ThreadPurchase, error) {
	return s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
}

func (s *PurchaseService) ListPurchases(ctx context.Context, vendorID *int64, status *domain.PaymentStatus, limit, offset int) ([]domain.ThreadPurchase, error) {
	purchases, err := s.purchaseRepo.ListPurchases(ctx, vendorID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

// ReceivePurchase flags the purchase as received and books the thread into a
// new inventory stock line. The repository does both writes in one
// transaction so the received flag and the stock line land together.
func (s *PurchaseService) ReceivePurchase(ctx context.Context, purchaseID int64, updaterUserID string) (*domain.ThreadPurchase, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	purchase, err := s.purchaseRepo.ReceivePurchase(ctx, purchaseID, updaterUserID, time.Now())
	if err != nil {
		return nil, err
	}

	logger.Info("Thread purchase received", slog.Int64("purchase_id", purchaseID))
	return purchase, nil
}
