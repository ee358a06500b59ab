package dto

import (
	"github.com/shopspring/decimal"
	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// MonthlySalesPointResponse is one month on the dashboard sales chart.
type MonthlySalesPointResponse struct {
	Month  string          `json:"month"`
	Total  decimal.Decimal `json:"total"`
	Orders int64           `json:"orders"`
}

// PartyTotalResponse ranks one khatabook party by billed volume.
type PartyTotalResponse struct {
	PartyID int64           `json:"partyID"`
	Name    string          `json:"name"`
	Total   decimal.Decimal `json:"total"`
}

// DashboardResponse is the aggregate analytics view. PartialData signals
// that one or more sections failed to load and were zeroed.
type DashboardResponse struct {
	InventoryValue        decimal.Decimal             `json:"inventoryValue"`
	OutstandingReceivable decimal.Decimal             `json:"outstandingReceivable"`
	OutstandingPayable    decimal.Decimal             `json:"outstandingPayable"`
	MonthlySales          []MonthlySalesPointResponse `json:"monthlySales"`
	TopParties            []PartyTotalResponse        `json:"topParties"`
	PartialData           bool                        `json:"partialData"`
}

// ToDashboardResponse converts a domain.Dashboard to DashboardResponse DTO
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	sales := make([]MonthlySalesPointResponse, len(d.MonthlySales))
	for i, p := range d.MonthlySales {
		sales[i] = MonthlySalesPointResponse{Month: p.Month, Total: p.Total, Orders: p.Orders}
	}
	parties := make([]PartyTotalResponse, len(d.TopParties))
	for i, p := range d.TopParties {
		parties[i] = PartyTotalResponse{PartyID: p.PartyID, Name: p.Name, Total: p.Total}
	}
	return DashboardResponse{
		InventoryValue:        d.InventoryValue,
		OutstandingReceivable: d.OutstandingReceivable,
		OutstandingPayable:    d.OutstandingPayable,
		MonthlySales:          sales,
		TopParties:            parties,
		PartialData:           d.PartialData,
	}
}
