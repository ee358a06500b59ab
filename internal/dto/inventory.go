package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// CreateInventoryItemRequest defines the data needed to create a stock line.
// Quantity is the opening stock; a matching opening ledger entry is written
// in the same transaction.
type CreateInventoryItemRequest struct {
	ItemType    domain.ItemType `json:"itemType" binding:"required,oneof=THREAD DYED_THREAD FABRIC"`
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit" binding:"required"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	Location    string          `json:"location"`
}

// UpdateInventoryItemRequest defines the mutable fields of a stock line.
type UpdateInventoryItemRequest struct {
	Description *string          `json:"description"`
	UnitCost    *decimal.Decimal `json:"unitCost"`
	Location    *string          `json:"location"`
}

// AdjustInventoryRequest changes a stock line's quantity by a signed delta.
type AdjustInventoryRequest struct {
	Delta  decimal.Decimal `json:"delta" binding:"required"`
	Reason string          `json:"reason" binding:"required"`
}

// InventoryItemResponse defines the data returned for a stock line.
type InventoryItemResponse struct {
	ItemID      int64           `json:"itemID"`
	ItemType    string          `json:"itemType"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	Location    string          `json:"location"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToInventoryItemResponse converts a domain.InventoryItem to its DTO.
func ToInventoryItemResponse(i *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ItemID:      i.ItemID,
		ItemType:    string(i.ItemType),
		Description: i.Description,
		Quantity:    i.Quantity,
		Unit:        i.Unit,
		UnitCost:    i.UnitCost,
		Location:    i.Location,
		IsActive:    i.IsActive,
		CreatedAt:   i.CreatedAt,
	}
}

// ListInventoryItemsResponse wraps the list of stock lines.
type ListInventoryItemsResponse struct {
	Items []InventoryItemResponse `json:"items"`
}

// ToListInventoryItemsResponse converts stock lines to their list DTO.
func ToListInventoryItemsResponse(items []domain.InventoryItem) ListInventoryItemsResponse {
	res := make([]InventoryItemResponse, len(items))
	for i, it := range items {
		res[i] = ToInventoryItemResponse(&it)
	}
	return ListInventoryItemsResponse{Items: res}
}

// ListInventoryParams defines query parameters for listing stock.
type ListInventoryParams struct {
	ListParams
	ItemType *string `form:"itemType"`
}
