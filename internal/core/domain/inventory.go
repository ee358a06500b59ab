package domain

import "github.com/shopspring/decimal"

// ItemType classifies inventory stock.
type ItemType string

const (
	ItemThread     ItemType = "THREAD"
	ItemDyedThread ItemType = "DYED_THREAD"
	ItemFabric     ItemType = "FABRIC"
)

// InventoryItem is a stock line in the primary schema. Quantity is in Unit
// (kg for thread, meters for fabric).
type InventoryItem struct {
	ItemID      int64           `json:"itemID"`
	ItemType    ItemType        `json:"itemType"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	Location    string          `json:"location"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}
