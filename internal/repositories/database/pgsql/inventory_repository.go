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

type PgxInventoryRepository struct {
	BaseRepository
}

func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

const inventoryColumns = `item_id, item_type, description, quantity, unit, unit_cost, location, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanInventoryItem(row pgx.Row) (domain.InventoryItem, error) {
	var i domain.InventoryItem
	err := row.Scan(
		&i.ItemID, &i.ItemType, &i.Description, &i.Quantity, &i.Unit,
		&i.UnitCost, &i.Location, &i.IsActive,
		&i.CreatedAt, &i.CreatedBy, &i.LastUpdatedAt, &i.LastUpdatedBy,
	)
	return i, err
}

// SaveItem writes the stock line and, when present, its opening ledger entry
// in the same transaction so stock never appears without its book entry.
func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem, openingEntry *domain.LedgerEntry) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	itemID, err := insertInventoryItemInTx(ctx, tx, item)
	if err != nil {
		return 0, err
	}

	if openingEntry != nil {
		entryQuery := `
			INSERT INTO ledger_entries (entry_type, amount, remaining_amount, status, description, notes, reference, entry_date, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
		`
		if _, err := tx.Exec(ctx, entryQuery,
			string(openingEntry.EntryType),
			openingEntry.Amount,
			openingEntry.RemainingAmount,
			string(openingEntry.Status),
			openingEntry.Description,
			openingEntry.Notes,
			fmt.Sprintf("ITEM-%d", itemID),
			openingEntry.EntryDate,
			openingEntry.CreatedAt,
			openingEntry.CreatedBy,
			openingEntry.LastUpdatedAt,
			openingEntry.LastUpdatedBy,
		); err != nil {
			return 0, fmt.Errorf("failed to save opening ledger entry for item %d: %w", itemID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return itemID, nil
}

func (r *PgxInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET description = $1, unit_cost = $2, location = $3, last_updated_at = $4, last_updated_by = $5
		WHERE item_id = $6 AND is_active;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		item.Description,
		item.UnitCost,
		item.Location,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
		item.ItemID,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory item %d: %w", item.ItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AdjustQuantity applies a signed delta under a row lock so concurrent
// adjustments serialize and stock can never go negative.
func (r *PgxInventoryRepository) AdjustQuantity(ctx context.Context, itemID int64, delta decimal.Decimal, userID string) (*domain.InventoryItem, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	item, err := adjustQuantityInTx(ctx, tx, itemID, delta, userID)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return item, nil
}

// insertInventoryItemInTx is shared with the procurement and production
// repositories, which book their stock lines inside the transaction that
// flips the source record's state.
func insertInventoryItemInTx(ctx context.Context, tx pgx.Tx, item domain.InventoryItem) (int64, error) {
	query := `
		INSERT INTO inventory_items (item_type, description, quantity, unit, unit_cost, location, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING item_id;
	`
	var itemID int64
	err := tx.QueryRow(ctx, query,
		string(item.ItemType),
		item.Description,
		item.Quantity,
		item.Unit,
		item.UnitCost,
		item.Location,
		item.IsActive,
		item.CreatedAt,
		item.CreatedBy,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	).Scan(&itemID)
	if err != nil {
		return 0, fmt.Errorf("failed to save inventory item: %w", err)
	}
	return itemID, nil
}

// adjustQuantityInTx is shared with the sales repository, which decrements
// stock inside its own order transaction.
func adjustQuantityInTx(ctx context.Context, tx pgx.Tx, itemID int64, delta decimal.Decimal, userID string) (*domain.InventoryItem, error) {
	lockQuery := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE item_id = $1 AND is_active FOR UPDATE;`
	item, err := scanInventoryItem(tx.QueryRow(ctx, lockQuery, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock inventory item %d: %w", itemID, err)
	}

	newQuantity := item.Quantity.Add(delta)
	if newQuantity.IsNegative() {
		return nil, fmt.Errorf("%w: insufficient stock for item %d: have %s, need %s",
			apperrors.ErrValidation, itemID, item.Quantity.String(), delta.Neg().String())
	}

	updateQuery := `
		UPDATE inventory_items
		SET quantity = $1, last_updated_at = now(), last_updated_by = $2
		WHERE item_id = $3;
	`
	if _, err := tx.Exec(ctx, updateQuery, newQuantity, userID, itemID); err != nil {
		return nil, fmt.Errorf("failed to adjust inventory item %d: %w", itemID, err)
	}

	item.Quantity = newQuantity
	item.LastUpdatedBy = userID
	return &item, nil
}

func (r *PgxInventoryRepository) FindItemByID(ctx context.Context, itemID int64) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE item_id = $1;`
	item, err := scanInventoryItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item %d: %w", itemID, err)
	}
	return &item, nil
}

func (r *PgxInventoryRepository) ListItems(ctx context.Context, itemType *domain.ItemType, limit, offset int) ([]domain.InventoryItem, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE is_active`
	args := []interface{}{}
	argIdx := 1
	if itemType != nil {
		query += fmt.Sprintf(" AND item_type = $%d", argIdx)
		args = append(args, string(*itemType))
		argIdx++
	}
	query += fmt.Sprintf(" ORDER BY description LIMIT $%d OFFSET $%d;", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory items: %w", err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating inventory rows: %w", rows.Err())
	}
	return items, nil
}
