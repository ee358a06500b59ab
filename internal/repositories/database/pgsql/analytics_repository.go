package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sutratex/bunai-backend/internal/core/domain"
	portsrepo "github.com/sutratex/bunai-backend/internal/core/ports/repositories"
)

// PgxAnalyticsRepository answers the dashboard aggregates. It is the one
// repository that touches both pools: stock, sales and purchases live in the
// primary schema while party rankings come from the khatabook schema.
type PgxAnalyticsRepository struct {
	primary *pgxpool.Pool
	ledger  *pgxpool.Pool
}

func newPgxAnalyticsRepository(primary, ledger *pgxpool.Pool) portsrepo.AnalyticsRepository {
	return &PgxAnalyticsRepository{primary: primary, ledger: ledger}
}

var _ portsrepo.AnalyticsRepository = (*PgxAnalyticsRepository)(nil)

func (r *PgxAnalyticsRepository) GetInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(quantity * unit_cost), 0) FROM inventory_items WHERE is_active;`
	var value decimal.Decimal
	if err := r.primary.QueryRow(ctx, query).Scan(&value); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute inventory value: %w", err)
	}
	return value, nil
}

func (r *PgxAnalyticsRepository) GetOutstandingReceivable(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_amount - paid_amount), 0)
		FROM sales_orders
		WHERE status IN ('PENDING', 'PARTIAL');
	`
	var value decimal.Decimal
	if err := r.primary.QueryRow(ctx, query).Scan(&value); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute outstanding receivable: %w", err)
	}
	return value, nil
}

func (r *PgxAnalyticsRepository) GetOutstandingPayable(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_amount - paid_amount), 0)
		FROM thread_purchases
		WHERE status IN ('PENDING', 'PARTIAL');
	`
	var value decimal.Decimal
	if err := r.primary.QueryRow(ctx, query).Scan(&value); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute outstanding payable: %w", err)
	}
	return value, nil
}

func (r *PgxAnalyticsRepository) GetMonthlySales(ctx context.Context, months int) ([]domain.MonthlySalesPoint, error) {
	if months <= 0 {
		months = 12
	}
	query := `
		SELECT to_char(date_trunc('month', order_date), 'YYYY-MM') AS month,
		       COALESCE(SUM(total_amount), 0),
		       COUNT(*)
		FROM sales_orders
		WHERE status <> 'CANCELLED'
		  AND order_date >= date_trunc('month', now()) - make_interval(months => $1 - 1)
		GROUP BY 1
		ORDER BY 1;
	`
	rows, err := r.primary.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly sales: %w", err)
	}
	defer rows.Close()

	points := []domain.MonthlySalesPoint{}
	for rows.Next() {
		var p domain.MonthlySalesPoint
		if err := rows.Scan(&p.Month, &p.Total, &p.Orders); err != nil {
			return nil, fmt.Errorf("failed to scan monthly sales row: %w", err)
		}
		points = append(points, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating monthly sales rows: %w", rows.Err())
	}
	return points, nil
}

func (r *PgxAnalyticsRepository) GetTopParties(ctx context.Context, limit int) ([]domain.PartyTotal, error) {
	if limit <= 0 {
		limit = 5
	}
	query := `
		SELECT p.party_id, p.name, COALESCE(SUM(b.amount), 0) AS total
		FROM khatabook.parties p
		JOIN khatabook.bills b ON b.party_id = p.party_id AND b.status <> 'CANCELLED'
		GROUP BY p.party_id, p.name
		ORDER BY total DESC
		LIMIT $1;
	`
	rows, err := r.ledger.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top parties: %w", err)
	}
	defer rows.Close()

	parties := []domain.PartyTotal{}
	for rows.Next() {
		var p domain.PartyTotal
		if err := rows.Scan(&p.PartyID, &p.Name, &p.Total); err != nil {
			return nil, fmt.Errorf("failed to scan top party row: %w", err)
		}
		parties = append(parties, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating top party rows: %w", rows.Err())
	}
	return parties, nil
}
