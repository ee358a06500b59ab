package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sutratex/bunai-backend/internal/apperrors"
	"github.com/sutratex/bunai-backend/internal/core/domain"
	portsrepo "github.com/sutratex/bunai-backend/internal/core/ports/repositories"
)

type PgxDyeingRepository struct {
	BaseRepository
}

func newPgxDyeingRepository(pool *pgxpool.Pool) portsrepo.DyeingRepositoryFacade {
	return &PgxDyeingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DyeingRepositoryFacade = (*PgxDyeingRepository)(nil)

const dyeingColumns = `dyeing_id, purchase_id, dye_color, quantity_sent_kg, quantity_recv_kg, loss_kg, charge_per_kg, total_charge, status, sent_date, received_date, created_at, created_by, last_updated_at, last_updated_by`

func scanDyeing(row pgx.Row) (domain.DyeingProcess, error) {
	var d domain.DyeingProcess
	err := row.Scan(
		&d.DyeingID, &d.PurchaseID, &d.DyeColor,
		&d.QuantitySentKg, &d.QuantityRecvKg, &d.LossKg,
		&d.ChargePerKg, &d.TotalCharge, &d.Status,
		&d.SentDate, &d.ReceivedDate,
		&d.CreatedAt, &d.CreatedBy, &d.LastUpdatedAt, &d.LastUpdatedBy,
	)
	return d, err
}

func (r *PgxDyeingRepository) SaveDyeing(ctx context.Context, process domain.DyeingProcess) (int64, error) {
	query := `
		INSERT INTO dyeing_processes (purchase_id, dye_color, quantity_sent_kg, quantity_recv_kg, loss_kg, charge_per_kg, total_charge, status, sent_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING dyeing_id;
	`
	var dyeingID int64
	err := r.Pool.QueryRow(ctx, query,
		process.PurchaseID,
		process.DyeColor,
		process.QuantitySentKg,
		process.QuantityRecvKg,
		process.LossKg,
		process.ChargePerKg,
		process.TotalCharge,
		string(process.Status),
		process.SentDate,
		process.CreatedAt,
		process.CreatedBy,
		process.LastUpdatedAt,
		process.LastUpdatedBy,
	).Scan(&dyeingID)
	if err != nil {
		return 0, fmt.Errorf("failed to save dyeing process: %w", err)
	}
	return dyeingID, nil
}

// ReceiveDyeing closes the lot under a row lock. Loss and total charge are
// computed here so the stored numbers always agree with the received
// quantity, and the dyed thread stock line is inserted in the same
// transaction so a received lot can never lose its stock.
func (r *PgxDyeingRepository) ReceiveDyeing(ctx context.Context, dyeingID int64, quantityRecvKg decimal.Decimal, userID string, now time.Time) (*domain.DyeingProcess, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + dyeingColumns + ` FROM dyeing_processes WHERE dyeing_id = $1 FOR UPDATE;`
	d, err := scanDyeing(tx.QueryRow(ctx, lockQuery, dyeingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock dyeing process %d: %w", dyeingID, err)
	}

	if d.Status != domain.ProcessSent {
		return nil, fmt.Errorf("%w: dyeing process %d is %s, expected SENT", apperrors.ErrValidation, dyeingID, d.Status)
	}
	if quantityRecvKg.IsNegative() || quantityRecvKg.GreaterThan(d.QuantitySentKg) {
		return nil, fmt.Errorf("%w: received quantity must be between 0 and the sent quantity", apperrors.ErrValidation)
	}

	d.QuantityRecvKg = quantityRecvKg
	d.LossKg = d.QuantitySentKg.Sub(quantityRecvKg)
	d.TotalCharge = quantityRecvKg.Mul(d.ChargePerKg)
	d.Status = domain.ProcessReceived
	d.ReceivedDate = &now
	d.LastUpdatedAt = now
	d.LastUpdatedBy = userID

	updateQuery := `
		UPDATE dyeing_processes
		SET quantity_recv_kg = $1, loss_kg = $2, total_charge = $3, status = $4, received_date = $5, last_updated_at = $5, last_updated_by = $6
		WHERE dyeing_id = $7;
	`
	if _, err := tx.Exec(ctx, updateQuery,
		d.QuantityRecvKg, d.LossKg, d.TotalCharge, string(d.Status), now, userID, dyeingID,
	); err != nil {
		return nil, fmt.Errorf("failed to receive dyeing process %d: %w", dyeingID, err)
	}

	if d.QuantityRecvKg.IsPositive() {
		item := domain.InventoryItem{
			ItemType:    domain.ItemDyedThread,
			Description: fmt.Sprintf("dyed thread %s", d.DyeColor),
			Quantity:    d.QuantityRecvKg,
			Unit:        "kg",
			UnitCost:    d.ChargePerKg,
			IsActive:    true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		if _, err := insertInventoryItemInTx(ctx, tx, item); err != nil {
			return nil, fmt.Errorf("failed to book dyed thread for dyeing process %d: %w", dyeingID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &d, nil
}

// CancelDyeing abandons a lot that was sent but will not come back.
func (r *PgxDyeingRepository) CancelDyeing(ctx context.Context, dyeingID int64, userID string, now time.Time) (*domain.DyeingProcess, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + dyeingColumns + ` FROM dyeing_processes WHERE dyeing_id = $1 FOR UPDATE;`
	d, err := scanDyeing(tx.QueryRow(ctx, lockQuery, dyeingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock dyeing process %d: %w", dyeingID, err)
	}

	if d.Status != domain.ProcessSent {
		return nil, fmt.Errorf("%w: dyeing process %d is %s, expected SENT", apperrors.ErrValidation, dyeingID, d.Status)
	}

	d.Status = domain.ProcessCancelled
	d.LastUpdatedAt = now
	d.LastUpdatedBy = userID

	updateQuery := `
		UPDATE dyeing_processes
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE dyeing_id = $4;
	`
	if _, err := tx.Exec(ctx, updateQuery, string(d.Status), now, userID, dyeingID); err != nil {
		return nil, fmt.Errorf("failed to cancel dyeing process %d: %w", dyeingID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxDyeingRepository) FindDyeingByID(ctx context.Context, dyeingID int64) (*domain.DyeingProcess, error) {
	query := `SELECT ` + dyeingColumns + ` FROM dyeing_processes WHERE dyeing_id = $1;`
	d, err := scanDyeing(r.Pool.QueryRow(ctx, query, dyeingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find dyeing process %d: %w", dyeingID, err)
	}
	return &d, nil
}

func (r *PgxDyeingRepository) ListDyeing(ctx context.Context, status *domain.ProcessStatus, limit, offset int) ([]domain.DyeingProcess, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + dyeingColumns + ` FROM dyeing_processes`
	args := []interface{}{}
	argIdx := 1
	if status != nil {
		query += fmt.Sprintf(" WHERE status = $%d", argIdx)
		args = append(args, string(*status))
		argIdx++
	}
	query += fmt.Sprintf(" ORDER BY sent_date DESC, dyeing_id DESC LIMIT $%d OFFSET $%d;", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query dyeing processes: %w", err)
	}
	defer rows.Close()

	processes := []domain.DyeingProcess{}
	for rows.Next() {
		d, err := scanDyeing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dyeing row: %w", err)
		}
		processes = append(processes, d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating dyeing rows: %w", rows.Err())
	}
	return processes, nil
}

type PgxProductionRepository struct {
	BaseRepository
}

func newPgxProductionRepository(pool *pgxpool.Pool) portsrepo.ProductionRepositoryFacade {
	return &PgxProductionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductionRepositoryFacade = (*PgxProductionRepository)(nil)

const productionColumns = `production_id, dyeing_id, fabric_type, dimensions, thread_used_kg, fabric_produced_m, production_cost, status, start_date, completed_date, created_at, created_by, last_updated_at, last_updated_by`

func scanProduction(row pgx.Row) (domain.FabricProduction, error) {
	var p domain.FabricProduction
	err := row.Scan(
		&p.ProductionID, &p.DyeingID, &p.FabricType, &p.Dimensions,
		&p.ThreadUsedKg, &p.FabricProducedM, &p.ProductionCost, &p.Status,
		&p.StartDate, &p.CompletedDate,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	return p, err
}

func (r *PgxProductionRepository) SaveProduction(ctx context.Context, run domain.FabricProduction) (int64, error) {
	query := `
		INSERT INTO fabric_productions (dyeing_id, fabric_type, dimensions, thread_used_kg, fabric_produced_m, production_cost, status, start_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING production_id;
	`
	var productionID int64
	err := r.Pool.QueryRow(ctx, query,
		run.DyeingID,
		run.FabricType,
		run.Dimensions,
		run.ThreadUsedKg,
		run.FabricProducedM,
		run.ProductionCost,
		string(run.Status),
		run.StartDate,
		run.CreatedAt,
		run.CreatedBy,
		run.LastUpdatedAt,
		run.LastUpdatedBy,
	).Scan(&productionID)
	if err != nil {
		return 0, fmt.Errorf("failed to save production run: %w", err)
	}
	return productionID, nil
}

// CompleteProduction closes the run and books the fabric into inventory in
// one transaction. The produced meters and cost are persisted together, so a
// later read returns the same cost the completion response carried.
func (r *PgxProductionRepository) CompleteProduction(ctx context.Context, productionID int64, fabricProducedM, productionCost decimal.Decimal, userID string, now time.Time) (*domain.FabricProduction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + productionColumns + ` FROM fabric_productions WHERE production_id = $1 FOR UPDATE;`
	p, err := scanProduction(tx.QueryRow(ctx, lockQuery, productionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock production run %d: %w", productionID, err)
	}

	if p.Status != domain.ProcessInProgress {
		return nil, fmt.Errorf("%w: production run %d is %s, expected IN_PROGRESS", apperrors.ErrValidation, productionID, p.Status)
	}
	if !fabricProducedM.IsPositive() {
		return nil, fmt.Errorf("%w: produced meters must be positive", apperrors.ErrValidation)
	}
	if productionCost.IsNegative() {
		return nil, fmt.Errorf("%w: production cost cannot be negative", apperrors.ErrValidation)
	}

	p.FabricProducedM = fabricProducedM
	p.ProductionCost = productionCost
	p.Status = domain.ProcessCompleted
	p.CompletedDate = &now
	p.LastUpdatedAt = now
	p.LastUpdatedBy = userID

	updateQuery := `
		UPDATE fabric_productions
		SET fabric_produced_m = $1, production_cost = $2, status = $3, completed_date = $4, last_updated_at = $4, last_updated_by = $5
		WHERE production_id = $6;
	`
	if _, err := tx.Exec(ctx, updateQuery, fabricProducedM, productionCost, string(p.Status), now, userID, productionID); err != nil {
		return nil, fmt.Errorf("failed to complete production run %d: %w", productionID, err)
	}

	item := domain.InventoryItem{
		ItemType:    domain.ItemFabric,
		Description: fmt.Sprintf("%s %s", p.FabricType, p.Dimensions),
		Quantity:    fabricProducedM,
		Unit:        "m",
		UnitCost:    productionCost.Div(fabricProducedM),
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if _, err := insertInventoryItemInTx(ctx, tx, item); err != nil {
		return nil, fmt.Errorf("failed to book fabric for production run %d: %w", productionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &p, nil
}

// CancelProduction abandons a run that will not finish.
func (r *PgxProductionRepository) CancelProduction(ctx context.Context, productionID int64, userID string, now time.Time) (*domain.FabricProduction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + productionColumns + ` FROM fabric_productions WHERE production_id = $1 FOR UPDATE;`
	p, err := scanProduction(tx.QueryRow(ctx, lockQuery, productionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock production run %d: %w", productionID, err)
	}

	if p.Status != domain.ProcessInProgress {
		return nil, fmt.Errorf("%w: production run %d is %s, expected IN_PROGRESS", apperrors.ErrValidation, productionID, p.Status)
	}

	p.Status = domain.ProcessCancelled
	p.LastUpdatedAt = now
	p.LastUpdatedBy = userID

	updateQuery := `
		UPDATE fabric_productions
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE production_id = $4;
	`
	if _, err := tx.Exec(ctx, updateQuery, string(p.Status), now, userID, productionID); err != nil {
		return nil, fmt.Errorf("failed to cancel production run %d: %w", productionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxProductionRepository) FindProductionByID(ctx context.Context, productionID int64) (*domain.FabricProduction, error) {
	query := `SELECT ` + productionColumns + ` FROM fabric_productions WHERE production_id = $1;`
	p, err := scanProduction(r.Pool.QueryRow(ctx, query, productionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find production run %d: %w", productionID, err)
	}
	return &p, nil
}

func (r *PgxProductionRepository) ListProductions(ctx context.Context, status *domain.ProcessStatus, limit, offset int) ([]domain.FabricProduction, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + productionColumns + ` FROM fabric_productions`
	args := []interface{}{}
	argIdx := 1
	if status != nil {
		query += fmt.Sprintf(" WHERE status = $%d", argIdx)
		args = append(args, string(*status))
		argIdx++
	}
	query += fmt.Sprintf(" ORDER BY start_date DESC, production_id DESC LIMIT $%d OFFSET $%d;", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query production runs: %w", err)
	}
	defer rows.Close()

	runs := []domain.FabricProduction{}
	for rows.Next() {
		p, err := scanProduction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan production row: %w", err)
		}
		runs = append(runs, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating production rows: %w", rows.Err())
	}
	return runs, nil
}
