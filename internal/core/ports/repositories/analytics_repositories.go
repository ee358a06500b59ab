package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// AnalyticsRepository provides the aggregate queries behind the dashboard.
// Each method is queried independently so a single failure can degrade to a
// partial dashboard instead of failing the whole request.
type AnalyticsRepository interface {
	// GetInventoryValue sums quantity * unit cost over active stock.
	GetInventoryValue(ctx context.Context) (decimal.Decimal, error)

	// GetOutstandingReceivable sums unpaid sales order balances.
	GetOutstandingReceivable(ctx context.Context) (decimal.Decimal, error)

	// GetOutstandingPayable sums unpaid thread purchase balances.
	GetOutstandingPayable(ctx context.Context) (decimal.Decimal, error)

	// GetMonthlySales returns per-month sales totals for the trailing months.
	GetMonthlySales(ctx context.Context, months int) ([]domain.MonthlySalesPoint, error)

	// GetTopParties ranks khatabook parties by total billed amount.
	GetTopParties(ctx context.Context, limit int) ([]domain.PartyTotal, error)
}
