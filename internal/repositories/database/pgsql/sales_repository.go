package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sutratex/bunai-backend/internal/apperrors"
	"github.com/sutratex/bunai-backend/internal/core/domain"
	portsrepo "github.com/sutratex/bunai-backend/internal/core/ports/repositories"
)

type PgxSalesRepository struct {
	BaseRepository
}

func newPgxSalesRepository(pool *pgxpool.Pool) portsrepo.SalesRepositoryFacade {
	return &PgxSalesRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SalesRepositoryFacade = (*PgxSalesRepository)(nil)

const orderColumns = `order_id, order_number, customer_name, customer_contact, total_amount, paid_amount, status, delivery_status, order_date, created_at, created_by, last_updated_at, last_updated_by`

func scanOrder(row pgx.Row) (domain.SalesOrder, error) {
	var o domain.SalesOrder
	err := row.Scan(
		&o.OrderID, &o.OrderNumber, &o.CustomerName, &o.CustomerContact,
		&o.TotalAmount, &o.PaidAmount, &o.Status, &o.DeliveryStatus, &o.OrderDate,
		&o.CreatedAt, &o.CreatedBy, &o.LastUpdatedAt, &o.LastUpdatedBy,
	)
	return o, err
}

// SaveOrder writes the order header, its line items, and the matching
// inventory decrements in one transaction. Any short line aborts the lot.
func (r *PgxSalesRepository) SaveOrder(ctx context.Context, order domain.SalesOrder) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	var orderNumber string
	if err := tx.QueryRow(ctx, `SELECT 'SO-' || nextval('sales_order_number_seq');`).Scan(&orderNumber); err != nil {
		return 0, fmt.Errorf("failed to allocate order number: %w", err)
	}

	orderQuery := `
		INSERT INTO sales_orders (order_number, customer_name, customer_contact, total_amount, paid_amount, status, delivery_status, order_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING order_id;
	`
	var orderID int64
	err = tx.QueryRow(ctx, orderQuery,
		orderNumber,
		order.CustomerName,
		order.CustomerContact,
		order.TotalAmount,
		order.PaidAmount,
		string(order.Status),
		string(order.DeliveryStatus),
		order.OrderDate,
		order.CreatedAt,
		order.CreatedBy,
		order.LastUpdatedAt,
		order.LastUpdatedBy,
	).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to save sales order: %w", err)
	}

	itemQuery := `
		INSERT INTO sales_order_items (order_id, item_id, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, line := range order.Items {
		// Lock and decrement stock for this line; short stock aborts here.
		if _, err := adjustQuantityInTx(ctx, tx, line.ItemID, line.Quantity.Neg(), order.CreatedBy); err != nil {
			return 0, err
		}
		if _, err := tx.Exec(ctx, itemQuery, orderID, line.ItemID, line.Quantity, line.UnitPrice, line.LineTotal); err != nil {
			return 0, fmt.Errorf("failed to save order line for item %d: %w", line.ItemID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *PgxSalesRepository) MarkOrderDelivered(ctx context.Context, orderID int64, userID string, now time.Time) error {
	query := `
		UPDATE sales_orders
		SET delivery_status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE order_id = $4 AND delivery_status = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		string(domain.DeliveryDelivered), now, userID, orderID, string(domain.DeliveryPending),
	)
	if err != nil {
		return fmt.Errorf("failed to mark order %d delivered: %w", orderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if lookErr := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sales_orders WHERE order_id = $1)`, orderID).Scan(&exists); lookErr != nil {
			return fmt.Errorf("failed to check order %d: %w", orderID, lookErr)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("%w: order %d is not pending delivery", apperrors.ErrValidation, orderID)
	}
	return nil
}

func (r *PgxSalesRepository) FindOrderByID(ctx context.Context, orderID int64) (*domain.SalesOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM sales_orders WHERE order_id = $1;`
	order, err := scanOrder(r.Pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sales order %d: %w", orderID, err)
	}

	itemQuery := `
		SELECT order_item_id, order_id, item_id, quantity, unit_price, line_total
		FROM sales_order_items
		WHERE order_id = $1
		ORDER BY order_item_id;
	`
	rows, err := r.Pool.Query(ctx, itemQuery, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order lines for order %d: %w", orderID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.SalesOrderItem
		if err := rows.Scan(&line.OrderItemID, &line.OrderID, &line.ItemID, &line.Quantity, &line.UnitPrice, &line.LineTotal); err != nil {
			return nil, fmt.Errorf("failed to scan order line row: %w", err)
		}
		order.Items = append(order.Items, line)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating order line rows: %w", rows.Err())
	}
	return &order, nil
}

func (r *PgxSalesRepository) ListOrders(ctx context.Context, status *domain.PaymentStatus, limit, offset int) ([]domain.SalesOrder, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + orderColumns + ` FROM sales_orders`
	args := []interface{}{}
	argIdx := 1
	if status != nil {
		query += fmt.Sprintf(" WHERE status = $%d", argIdx)
		args = append(args, string(*status))
		argIdx++
	}
	query += fmt.Sprintf(" ORDER BY order_date DESC, order_id DESC LIMIT $%d OFFSET $%d;", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.SalesOrder{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales order row: %w", err)
		}
		orders = append(orders, o)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sales order rows: %w", rows.Err())
	}
	return orders, nil
}
