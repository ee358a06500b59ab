package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sutratex/bunai-backend/internal/apperrors"
	"github.com/sutratex/bunai-backend/internal/core/domain"
	portsrepo "github.com/sutratex/bunai-backend/internal/core/ports/repositories"
	"github.com/sutratex/bunai-backend/internal/ledgertag"
	"github.com/sutratex/bunai-backend/internal/models"
)

type PgxLedgerEntryRepository struct {
	BaseRepository
}

func newPgxLedgerEntryRepository(pool *pgxpool.Pool) portsrepo.LedgerEntryRepositoryFacade {
	return &PgxLedgerEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerEntryRepository implements portsrepo.LedgerEntryRepositoryFacade
var _ portsrepo.LedgerEntryRepositoryFacade = (*PgxLedgerEntryRepository)(nil)

const entryColumns = `entry_id, entry_type, amount, remaining_amount, status, description, notes, reference, entry_date, created_at, created_by, last_updated_at, last_updated_by`

func toModelEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:         d.EntryID,
		EntryType:       string(d.EntryType),
		Amount:          d.Amount,
		RemainingAmount: d.RemainingAmount,
		Status:          string(d.Status),
		Description:     d.Description,
		Notes:           d.Notes,
		Reference:       d.Reference,
		EntryDate:       d.EntryDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:         m.EntryID,
		EntryType:       domain.EntryType(m.EntryType),
		Amount:          m.Amount,
		RemainingAmount: m.RemainingAmount,
		Status:          domain.PaymentStatus(m.Status),
		Description:     m.Description,
		Notes:           m.Notes,
		Reference:       m.Reference,
		EntryDate:       m.EntryDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanEntry(row pgx.Row) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryType,
		&m.Amount,
		&m.RemainingAmount,
		&m.Status,
		&m.Description,
		&m.Notes,
		&m.Reference,
		&m.EntryDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLedgerEntryRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) (int64, error) {
	m := toModelEntry(entry)
	query := `
		INSERT INTO ledger_entries (entry_type, amount, remaining_amount, status, description, notes, reference, entry_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING entry_id;
	`
	var entryID int64
	err := r.Pool.QueryRow(ctx, query,
		m.EntryType,
		m.Amount,
		m.RemainingAmount,
		m.Status,
		m.Description,
		m.Notes,
		m.Reference,
		m.EntryDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&entryID)
	if err != nil {
		return 0, fmt.Errorf("failed to save ledger entry: %w", err)
	}
	return entryID, nil
}

func (r *PgxLedgerEntryRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := toModelEntry(entry)
	query := `
		UPDATE ledger_entries
		SET description = $1, notes = $2, reference = $3, status = $4, remaining_amount = $5, last_updated_at = $6, last_updated_by = $7
		WHERE entry_id = $8;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Description,
		m.Notes,
		m.Reference,
		m.Status,
		m.RemainingAmount,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.EntryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update ledger entry %d: %w", entry.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLedgerEntryRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE entry_id = $1;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry %d: %w", entryID, err)
	}
	d := toDomainEntry(m)
	return &d, nil
}

func (r *PgxLedgerEntryRepository) FindEntryByReference(ctx context.Context, reference string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE reference = $1 ORDER BY entry_id LIMIT 1;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry by reference %q: %w", reference, err)
	}
	d := toDomainEntry(m)
	return &d, nil
}

func (r *PgxLedgerEntryRepository) ListEntries(ctx context.Context, filter domain.EntryListFilter) ([]domain.LedgerEntry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.KhataID != nil {
		// Digit boundary keeps khata:1 from matching khata:10. The khata's
		// own sentinel row is excluded from its book.
		query += fmt.Sprintf(" AND (notes ~ $%d OR reference ~ $%d) AND entry_type <> 'KHATA'", argIdx, argIdx)
		args = append(args, ledgertag.KhataPattern(*filter.KhataID))
		argIdx++
	}
	if filter.EntryType != nil {
		query += fmt.Sprintf(" AND entry_type = $%d", argIdx)
		args = append(args, string(*filter.EntryType))
		argIdx++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*filter.Status))
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY entry_date DESC, entry_id DESC LIMIT $%d OFFSET $%d;", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (r *PgxLedgerEntryRepository) ListEntriesWithoutKhataTag(ctx context.Context, limit int) ([]domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = 500
	}
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE entry_type <> 'KHATA'
		  AND notes !~ 'khata:[0-9]+'
		  AND reference !~ 'khata:[0-9]+'
		ORDER BY entry_id
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query untagged ledger entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]domain.LedgerEntry, error) {
	entries := []domain.LedgerEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, toDomainEntry(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", rows.Err())
	}
	return entries, nil
}

func (r *PgxLedgerEntryRepository) FindKhataByID(ctx context.Context, khataID int64) (*domain.Khata, error) {
	query := `
		SELECT entry_id, description, notes, created_at, created_by
		FROM ledger_entries
		WHERE entry_id = $1 AND entry_type = 'KHATA';
	`
	var k domain.Khata
	err := r.Pool.QueryRow(ctx, query, khataID).Scan(
		&k.KhataID,
		&k.Name,
		&k.Notes,
		&k.CreatedAt,
		&k.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find khata %d: %w", khataID, err)
	}
	return &k, nil
}

func (r *PgxLedgerEntryRepository) ListKhatas(ctx context.Context, limit, offset int) ([]domain.Khata, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT entry_id, description, notes, created_at, created_by
		FROM ledger_entries
		WHERE entry_type = 'KHATA'
		ORDER BY entry_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query khatas: %w", err)
	}
	defer rows.Close()

	khatas := []domain.Khata{}
	for rows.Next() {
		var k domain.Khata
		if err := rows.Scan(&k.KhataID, &k.Name, &k.Notes, &k.CreatedAt, &k.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan khata row: %w", err)
		}
		khatas = append(khatas, k)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating khata rows: %w", rows.Err())
	}
	return khatas, nil
}

func (r *PgxLedgerEntryRepository) SummarizeKhata(ctx context.Context, khataID int64) (*domain.KhataSummary, error) {
	khata, err := r.FindKhataByID(ctx, khataID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(remaining_amount) FILTER (WHERE status <> 'CANCELLED'), 0),
			COUNT(*) FILTER (WHERE status IN ('PENDING', 'PARTIAL')),
			COUNT(*) FILTER (WHERE status = 'PAID')
		FROM ledger_entries
		WHERE entry_type <> 'KHATA' AND (notes ~ $1 OR reference ~ $1);
	`
	summary := domain.KhataSummary{KhataID: khataID, Name: khata.Name}
	err = r.Pool.QueryRow(ctx, query, ledgertag.KhataPattern(khataID)).Scan(
		&summary.EntryCount,
		&summary.TotalAmount,
		&summary.TotalOutstanding,
		&summary.PendingCount,
		&summary.PaidCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize khata %s: %w", strconv.FormatInt(khataID, 10), err)
	}
	return &summary, nil
}
