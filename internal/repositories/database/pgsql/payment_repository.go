package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sutratex/bunai-backend/internal/apperrors"
	"github.com/sutratex/bunai-backend/internal/core/domain"
	portsrepo "github.com/sutratex/bunai-backend/internal/core/ports/repositories"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// RecordPayment inserts the payment and settles its target in one
// transaction. The target row stays locked until commit.
func (r *PgxPaymentRepository) RecordPayment(ctx context.Context, payment domain.Payment) (*domain.Payment, domain.PaymentStatus, error) {
	if !payment.Amount.IsPositive() {
		return nil, "", fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, "", err
	}
	defer r.Rollback(ctx, tx)

	var newStatus domain.PaymentStatus
	switch payment.TargetKind {
	case domain.TargetSale:
		newStatus, err = settleTarget(ctx, tx, settleQuerySale, payment.TargetID, payment.Amount, payment.CreatedBy)
	case domain.TargetPurchase:
		newStatus, err = settleTarget(ctx, tx, settleQueryPurchase, payment.TargetID, payment.Amount, payment.CreatedBy)
	default:
		return nil, "", fmt.Errorf("%w: unknown payment target %q", apperrors.ErrValidation, payment.TargetKind)
	}
	if err != nil {
		return nil, "", err
	}

	insertQuery := `
		INSERT INTO payments (target_kind, target_id, amount, method, reference, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING payment_id;
	`
	err = tx.QueryRow(ctx, insertQuery,
		string(payment.TargetKind),
		payment.TargetID,
		payment.Amount,
		string(payment.Method),
		payment.Reference,
		payment.CreatedAt,
		payment.CreatedBy,
		payment.LastUpdatedAt,
		payment.LastUpdatedBy,
	).Scan(&payment.PaymentID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to save payment: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, "", err
	}
	return &payment, newStatus, nil
}

type settleQuery struct {
	lock   string
	update string
}

var settleQuerySale = settleQuery{
	lock:   `SELECT total_amount, paid_amount, status FROM sales_orders WHERE order_id = $1 FOR UPDATE;`,
	update: `UPDATE sales_orders SET paid_amount = $1, status = $2, last_updated_at = now(), last_updated_by = $3 WHERE order_id = $4;`,
}

var settleQueryPurchase = settleQuery{
	lock:   `SELECT total_amount, paid_amount, status FROM thread_purchases WHERE purchase_id = $1 FOR UPDATE;`,
	update: `UPDATE thread_purchases SET paid_amount = $1, status = $2, last_updated_at = now(), last_updated_by = $3 WHERE purchase_id = $4;`,
}

func settleTarget(ctx context.Context, tx pgx.Tx, q settleQuery, targetID int64, amount decimal.Decimal, userID string) (domain.PaymentStatus, error) {
	var total, paid decimal.Decimal
	var status domain.PaymentStatus
	if err := tx.QueryRow(ctx, q.lock, targetID).Scan(&total, &paid, &status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to lock payment target %d: %w", targetID, err)
	}

	if status == domain.StatusCancelled {
		return "", fmt.Errorf("%w: payment target %d is cancelled", apperrors.ErrValidation, targetID)
	}

	newPaid := paid.Add(amount)
	newStatus := domain.NextPaymentStatus(status, total, newPaid)
	if _, err := tx.Exec(ctx, q.update, newPaid, string(newStatus), userID, targetID); err != nil {
		return "", fmt.Errorf("failed to settle payment target %d: %w", targetID, err)
	}
	return newStatus, nil
}

func (r *PgxPaymentRepository) ListPayments(ctx context.Context, targetKind *domain.PaymentTarget, targetID *int64, limit, offset int) ([]domain.Payment, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT payment_id, target_kind, target_id, amount, method, reference, created_at, created_by, last_updated_at, last_updated_by
		FROM payments
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1
	if targetKind != nil {
		query += fmt.Sprintf(" AND target_kind = $%d", argIdx)
		args = append(args, string(*targetKind))
		argIdx++
	}
	if targetID != nil {
		query += fmt.Sprintf(" AND target_id = $%d", argIdx)
		args = append(args, *targetID)
		argIdx++
	}
	query += fmt.Sprintf(" ORDER BY payment_id DESC LIMIT $%d OFFSET $%d;", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.PaymentID, &p.TargetKind, &p.TargetID, &p.Amount, &p.Method, &p.Reference,
			&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}
	return payments, nil
}
