package domain

import "github.com/shopspring/decimal"

// MonthlySalesPoint is one month of the dashboard sales series.
type MonthlySalesPoint struct {
	Month  string          `json:"month"` // "2025-03"
	Total  decimal.Decimal `json:"total"`
	Orders int64           `json:"orders"`
}

// PartyTotal ranks a khatabook party by billed volume.
type PartyTotal struct {
	PartyID int64           `json:"partyID"`
	Name    string          `json:"name"`
	Total   decimal.Decimal `json:"total"`
}

// Dashboard is the aggregate analytics view. Sections that failed to load
// are zeroed and PartialData is set instead of failing the whole request.
type Dashboard struct {
	InventoryValue        decimal.Decimal     `json:"inventoryValue"`
	OutstandingReceivable decimal.Decimal     `json:"outstandingReceivable"`
	OutstandingPayable    decimal.Decimal     `json:"outstandingPayable"`
	MonthlySales          []MonthlySalesPoint `json:"monthlySales"`
	TopParties            []PartyTotal        `json:"topParties"`
	PartialData           bool                `json:"partialData"`
}
