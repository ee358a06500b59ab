package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// InventoryReader defines read operations for inventory stock.
type InventoryReader interface {
	FindItemByID(ctx context.Context, itemID int64) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, itemType *domain.ItemType, limit, offset int) ([]domain.InventoryItem, error)
}

// InventoryWriter defines write operations for inventory stock.
type InventoryWriter interface {
	// SaveItem persists a new item. When openingEntry is non-nil, the item
	// and its opening ledger entry are written in one database transaction.
	SaveItem(ctx context.Context, item domain.InventoryItem, openingEntry *domain.LedgerEntry) (int64, error)

	UpdateItem(ctx context.Context, item domain.InventoryItem) error

	// AdjustQuantity adds delta (which may be negative) to the item's
	// quantity with the row locked. A result below zero yields
	// ErrValidation and leaves the row unchanged.
	AdjustQuantity(ctx context.Context, itemID int64, delta decimal.Decimal, userID string) (*domain.InventoryItem, error)
}

// InventoryRepositoryFacade combines all inventory repository interfaces.
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
}
