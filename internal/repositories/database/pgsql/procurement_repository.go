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

type PgxVendorRepository struct {
	BaseRepository
}

func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) (int64, error) {
	query := `
		INSERT INTO vendors (name, contact, address, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING vendor_id;
	`
	var vendorID int64
	err := r.Pool.QueryRow(ctx, query,
		vendor.Name,
		vendor.Contact,
		vendor.Address,
		vendor.IsActive,
		vendor.CreatedAt,
		vendor.CreatedBy,
		vendor.LastUpdatedAt,
		vendor.LastUpdatedBy,
	).Scan(&vendorID)
	if err != nil {
		return 0, fmt.Errorf("failed to save vendor: %w", err)
	}
	return vendorID, nil
}

func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	query := `
		UPDATE vendors
		SET name = $1, contact = $2, address = $3, last_updated_at = $4, last_updated_by = $5
		WHERE vendor_id = $6 AND is_active;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		vendor.Name,
		vendor.Contact,
		vendor.Address,
		vendor.LastUpdatedAt,
		vendor.LastUpdatedBy,
		vendor.VendorID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vendor %d: %w", vendor.VendorID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVendorRepository) DeactivateVendor(ctx context.Context, vendorID int64, userID string, now time.Time) error {
	query := `
		UPDATE vendors
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE vendor_id = $3 AND is_active;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, now, userID, vendorID)
	if err != nil {
		return fmt.Errorf("failed to deactivate vendor %d: %w", vendorID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either missing or already inactive; disambiguate for the caller.
		var exists bool
		if lookErr := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM vendors WHERE vendor_id = $1)`, vendorID).Scan(&exists); lookErr != nil {
			return fmt.Errorf("failed to check vendor %d: %w", vendorID, lookErr)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("%w: vendor %d is already inactive", apperrors.ErrValidation, vendorID)
	}
	return nil
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID int64) (*domain.Vendor, error) {
	query := `
		SELECT vendor_id, name, contact, address, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM vendors
		WHERE vendor_id = $1;
	`
	var v domain.Vendor
	err := r.Pool.QueryRow(ctx, query, vendorID).Scan(
		&v.VendorID, &v.Name, &v.Contact, &v.Address, &v.IsActive,
		&v.CreatedAt, &v.CreatedBy, &v.LastUpdatedAt, &v.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor %d: %w", vendorID, err)
	}
	return &v, nil
}

func (r *PgxVendorRepository) ListVendors(ctx context.Context, limit, offset int) ([]domain.Vendor, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT vendor_id, name, contact, address, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM vendors
		WHERE is_active
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	vendors := []domain.Vendor{}
	for rows.Next() {
		var v domain.Vendor
		if err := rows.Scan(&v.VendorID, &v.Name, &v.Contact, &v.Address, &v.IsActive,
			&v.CreatedAt, &v.CreatedBy, &v.LastUpdatedAt, &v.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan vendor row: %w", err)
		}
		vendors = append(vendors, v)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating vendor rows: %w", rows.Err())
	}
	return vendors, nil
}

type PgxPurchaseRepository struct {
	BaseRepository
}

func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

const purchaseColumns = `purchase_id, vendor_id, thread_type, color, quantity_kg, unit_price, total_amount, paid_amount, status, received, purchase_date, created_at, created_by, last_updated_at, last_updated_by`

func scanPurchase(row pgx.Row) (domain.ThreadPurchase, error) {
	var p domain.ThreadPurchase
	err := row.Scan(
		&p.PurchaseID, &p.VendorID, &p.ThreadType, &p.Color,
		&p.QuantityKg, &p.UnitPrice, &p.TotalAmount, &p.PaidAmount,
		&p.Status, &p.Received, &p.PurchaseDate,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	return p, err
}

func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.ThreadPurchase) (int64, error) {
	query := `
		INSERT INTO thread_purchases (vendor_id, thread_type, color, quantity_kg, unit_price, total_amount, paid_amount, status, received, purchase_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING purchase_id;
	`
	var purchaseID int64
	err := r.Pool.QueryRow(ctx, query,
		purchase.VendorID,
		purchase.ThreadType,
		purchase.Color,
		purchase.QuantityKg,
		purchase.UnitPrice,
		purchase.TotalAmount,
		purchase.PaidAmount,
		string(purchase.Status),
		purchase.Received,
		purchase.PurchaseDate,
		purchase.CreatedAt,
		purchase.CreatedBy,
		purchase.LastUpdatedAt,
		purchase.LastUpdatedBy,
	).Scan(&purchaseID)
	if err != nil {
		return 0, fmt.Errorf("failed to save thread purchase: %w", err)
	}
	return purchaseID, nil
}

// ReceivePurchase flips the received flag and books the thread into a new
// inventory stock line in one transaction, so a received purchase can never
// lose its stock.
func (r *PgxPurchaseRepository) ReceivePurchase(ctx context.Context, purchaseID int64, userID string, now time.Time) (*domain.ThreadPurchase, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + purchaseColumns + ` FROM thread_purchases WHERE purchase_id = $1 FOR UPDATE;`
	p, err := scanPurchase(tx.QueryRow(ctx, lockQuery, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock purchase %d: %w", purchaseID, err)
	}
	if p.Received {
		return nil, fmt.Errorf("%w: purchase %d is already received", apperrors.ErrValidation, purchaseID)
	}

	updateQuery := `
		UPDATE thread_purchases
		SET received = TRUE, last_updated_at = $1, last_updated_by = $2
		WHERE purchase_id = $3;
	`
	if _, err := tx.Exec(ctx, updateQuery, now, userID, purchaseID); err != nil {
		return nil, fmt.Errorf("failed to mark purchase %d received: %w", purchaseID, err)
	}
	p.Received = true
	p.LastUpdatedAt = now
	p.LastUpdatedBy = userID

	item := domain.InventoryItem{
		ItemType:    domain.ItemThread,
		Description: fmt.Sprintf("%s %s", p.ThreadType, p.Color),
		Quantity:    p.QuantityKg,
		Unit:        "kg",
		UnitCost:    p.UnitPrice,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if _, err := insertInventoryItemInTx(ctx, tx, item); err != nil {
		return nil, fmt.Errorf("failed to book received thread for purchase %d: %w", purchaseID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID int64) (*domain.ThreadPurchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM thread_purchases WHERE purchase_id = $1;`
	p, err := scanPurchase(r.Pool.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase %d: %w", purchaseID, err)
	}
	return &p, nil
}

func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, vendorID *int64, status *domain.PaymentStatus, limit, offset int) ([]domain.ThreadPurchase, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + purchaseColumns + ` FROM thread_purchases WHERE 1=1`
	args := []interface{}{}
	argIdx := 1
	if vendorID != nil {
		query += fmt.Sprintf(" AND vendor_id = $%d", argIdx)
		args = append(args, *vendorID)
		argIdx++
	}
	if status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*status))
		argIdx++
	}
	query += fmt.Sprintf(" ORDER BY purchase_date DESC, purchase_id DESC LIMIT $%d OFFSET $%d;", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	purchases := []domain.ThreadPurchase{}
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", rows.Err())
	}
	return purchases, nil
}
