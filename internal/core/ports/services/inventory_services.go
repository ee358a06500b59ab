package services

import (
	"context"

	"github.com/sutratex/bunai-backend/internal/core/domain"
	"github.com/sutratex/bunai-backend/internal/dto"
)

// InventorySvcFacade manages stock.
type InventorySvcFacade interface {
	// CreateItem persists a new stock line. When the request asks for an
	// opening ledger entry, item and entry commit in one transaction.
	CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest, creatorUserID string) (*domain.InventoryItem, error)

	GetItemByID(ctx context.Context, itemID int64) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, itemType *domain.ItemType, limit, offset int) ([]domain.InventoryItem, error)
	UpdateItem(ctx context.Context, itemID int64, req dto.UpdateInventoryItemRequest, updaterUserID string) (*domain.InventoryItem, error)

	// AdjustQuantity applies a signed stock adjustment; going below zero is
	// rejected.
	AdjustQuantity(ctx context.Context, itemID int64, req dto.AdjustInventoryRequest, updaterUserID string) (*domain.InventoryItem, error)
}
