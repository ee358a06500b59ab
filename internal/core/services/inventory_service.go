package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sutratex/bunai-backend/internal/apperrors"
	"github.com/sutratex/bunai-backend/internal/core/domain"
	portsrepo "github.com/sutratex/bunai-backend/internal/core/ports/repositories"
	"github.com/sutratex/bunai-backend/internal/dto"
	"github.com/sutratex/bunai-backend/internal/middleware"
)

// InventoryService manages stock lines.
type InventoryService struct {
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

func NewInventoryService(inventoryRepo portsrepo.InventoryRepositoryFacade) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// CreateItem persists a new stock line. Opening stock with a cost also opens
// a matching INVENTORY ledger entry, committed with the item in one
// transaction by the repository.
func (s *InventoryService) CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest, creatorUserID string) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Quantity.IsNegative() {
		return nil, fmt.Errorf("%w: opening quantity cannot be negative", apperrors.ErrValidation)
	}
	if req.UnitCost.IsNegative() {
		return nil, fmt.Errorf("%w: unit cost cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	item := domain.InventoryItem{
		ItemType:    req.ItemType,
		Description: req.Description,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		UnitCost:    req.UnitCost,
		Location:    req.Location,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	var openingEntry *domain.LedgerEntry
	openingValue := req.Quantity.Mul(req.UnitCost)
	if openingValue.IsPositive() {
		openingEntry = &domain.LedgerEntry{
			EntryType:   domain.EntryInventory,
			Amount:      openingValue,
			Status:      domain.StatusPaid,
			Description: fmt.Sprintf("opening stock: %s", req.Description),
			EntryDate:   now,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
	}

	itemID, err := s.inventoryRepo.SaveItem(ctx, item, openingEntry)
	if err != nil {
		logger.Error("Failed to save inventory item", slog.String("error", err.Error()))
		return nil, err
	}
	item.ItemID = itemID

	logger.Info("Inventory item created", slog.Int64("item_id", itemID), slog.String("item_type", string(item.ItemType)))
	return &item, nil
}

func (s *InventoryService) GetItemByID(ctx context.Context, itemID int64) (*domain.InventoryItem, error) {
	return s.inventoryRepo.FindItemByID(ctx, itemID)
}

func (s *InventoryService) ListItems(ctx context.Context, itemType *domain.ItemType, limit, offset int) ([]domain.InventoryItem, error) {
	items, err := s.inventoryRepo.ListItems(ctx, itemType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	return items, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, itemID int64, req dto.UpdateInventoryItemRequest, updaterUserID string) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.UnitCost != nil {
		if req.UnitCost.IsNegative() {
			return nil, fmt.Errorf("%w: unit cost cannot be negative", apperrors.ErrValidation)
		}
		item.UnitCost = *req.UnitCost
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = updaterUserID

	if err := s.inventoryRepo.UpdateItem(ctx, *item); err != nil {
		return nil, err
	}
	return item, nil
}

// AdjustQuantity applies a signed stock correction.
func (s *InventoryService) AdjustQuantity(ctx context.Context, itemID int64, req dto.AdjustInventoryRequest, updaterUserID string) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Delta.IsZero() {
		return nil, fmt.Errorf("%w: adjustment delta cannot be zero", apperrors.ErrValidation)
	}

	item, err := s.inventoryRepo.AdjustQuantity(ctx, itemID, req.Delta, updaterUserID)
	if err != nil {
		return nil, err
	}

	logger.Info("Inventory adjusted",
		slog.Int64("item_id", itemID),
		slog.String("delta", req.Delta.String()),
		slog.String("reason", req.Reason),
	)
	return item, nil
}
