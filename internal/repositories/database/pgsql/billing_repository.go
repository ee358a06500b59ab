package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sutratex/bunai-backend/internal/apperrors"
	"github.com/sutratex/bunai-backend/internal/core/domain"
	portsrepo "github.com/sutratex/bunai-backend/internal/core/ports/repositories"
	"github.com/sutratex/bunai-backend/internal/models"
)

// PgxPartyRepository persists khatabook parties. It runs against the
// khatabook schema pool, not the primary one.
type PgxPartyRepository struct {
	BaseRepository
}

func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

func toDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID: m.PartyID,
		Name:    m.Name,
		Kind:    domain.PartyKind(m.Kind),
		Phone:   m.Phone,
		Address: m.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) (int64, error) {
	query := `
		INSERT INTO khatabook.parties (name, kind, phone, address, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING party_id;
	`
	var partyID int64
	err := r.Pool.QueryRow(ctx, query,
		party.Name,
		string(party.Kind),
		party.Phone,
		party.Address,
		party.CreatedAt,
		party.CreatedBy,
		party.LastUpdatedAt,
		party.LastUpdatedBy,
	).Scan(&partyID)
	if err != nil {
		return 0, fmt.Errorf("failed to save party: %w", err)
	}
	return partyID, nil
}

func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	query := `
		UPDATE khatabook.parties
		SET name = $1, phone = $2, address = $3, last_updated_at = $4, last_updated_by = $5
		WHERE party_id = $6;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		party.Name,
		party.Phone,
		party.Address,
		party.LastUpdatedAt,
		party.LastUpdatedBy,
		party.PartyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update party %d: %w", party.PartyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error) {
	query := `
		SELECT party_id, name, kind, phone, address, created_at, created_by, last_updated_at, last_updated_by
		FROM khatabook.parties
		WHERE party_id = $1;
	`
	var m models.Party
	err := r.Pool.QueryRow(ctx, query, partyID).Scan(
		&m.PartyID, &m.Name, &m.Kind, &m.Phone, &m.Address,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party %d: %w", partyID, err)
	}
	d := toDomainParty(m)
	return &d, nil
}

func (r *PgxPartyRepository) ListParties(ctx context.Context, kind *domain.PartyKind, limit, offset int) ([]domain.Party, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT party_id, name, kind, phone, address, created_at, created_by, last_updated_at, last_updated_by
		FROM khatabook.parties
	`
	args := []interface{}{}
	argIdx := 1
	if kind != nil {
		query += fmt.Sprintf(" WHERE kind = $%d", argIdx)
		args = append(args, string(*kind))
		argIdx++
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d;", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	parties := []domain.Party{}
	for rows.Next() {
		var m models.Party
		if err := rows.Scan(&m.PartyID, &m.Name, &m.Kind, &m.Phone, &m.Address,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan party row: %w", err)
		}
		parties = append(parties, toDomainParty(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating party rows: %w", rows.Err())
	}
	return parties, nil
}

// PgxBillRepository persists khatabook bills and their payment transactions.
type PgxBillRepository struct {
	BaseRepository
}

func newPgxBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

const billColumns = `bill_id, bill_number, party_id, khata_id, amount, paid_amount, status, description, bill_date, created_at, created_by, last_updated_at, last_updated_by`

func toDomainBill(m models.Bill) domain.Bill {
	d := domain.Bill{
		BillID:      m.BillID,
		BillNumber:  m.BillNumber,
		KhataID:     m.KhataID,
		Amount:      m.Amount,
		PaidAmount:  m.PaidAmount,
		Status:      domain.PaymentStatus(m.Status),
		Description: m.Description,
		BillDate:    m.BillDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.PartyID.Valid {
		partyID := m.PartyID.Int64
		d.PartyID = &partyID
	}
	return d
}

func scanBill(row pgx.Row) (models.Bill, error) {
	var m models.Bill
	err := row.Scan(
		&m.BillID, &m.BillNumber, &m.PartyID, &m.KhataID,
		&m.Amount, &m.PaidAmount, &m.Status, &m.Description, &m.BillDate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxBillRepository) SaveBill(ctx context.Context, bill domain.Bill) (int64, error) {
	query := `
		INSERT INTO khatabook.bills (bill_number, party_id, khata_id, amount, paid_amount, status, description, bill_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING bill_id;
	`
	var billID int64
	err := r.Pool.QueryRow(ctx, query,
		bill.BillNumber,
		bill.PartyID,
		bill.KhataID,
		bill.Amount,
		bill.PaidAmount,
		string(bill.Status),
		bill.Description,
		bill.BillDate,
		bill.CreatedAt,
		bill.CreatedBy,
		bill.LastUpdatedAt,
		bill.LastUpdatedBy,
	).Scan(&billID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return 0, fmt.Errorf("%w: bill number %s already exists", apperrors.ErrDuplicate, bill.BillNumber)
		}
		return 0, fmt.Errorf("failed to save bill: %w", err)
	}
	return billID, nil
}

func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID int64) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM khatabook.bills WHERE bill_id = $1;`
	m, err := scanBill(r.Pool.QueryRow(ctx, query, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill %d: %w", billID, err)
	}
	d := toDomainBill(m)
	return &d, nil
}

func (r *PgxBillRepository) ListBills(ctx context.Context, status *domain.PaymentStatus, partyID *int64, limit, offset int) ([]domain.Bill, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + billColumns + ` FROM khatabook.bills WHERE 1=1`
	args := []interface{}{}
	argIdx := 1
	if status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*status))
		argIdx++
	}
	if partyID != nil {
		query += fmt.Sprintf(" AND party_id = $%d", argIdx)
		args = append(args, *partyID)
		argIdx++
	}
	query += fmt.Sprintf(" ORDER BY bill_date DESC, bill_id DESC LIMIT $%d OFFSET $%d;", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	return collectBills(rows)
}

// ListAllBills reads the whole bill table ordered by id, for sync runs.
func (r *PgxBillRepository) ListAllBills(ctx context.Context) ([]domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM khatabook.bills ORDER BY bill_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all bills: %w", err)
	}
	defer rows.Close()

	return collectBills(rows)
}

func collectBills(rows pgx.Rows) ([]domain.Bill, error) {
	bills := []domain.Bill{}
	for rows.Next() {
		m, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill row: %w", err)
		}
		bills = append(bills, toDomainBill(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bill rows: %w", rows.Err())
	}
	return bills, nil
}

// RecordTransaction inserts the transaction and settles the bill atomically.
// The bill row stays locked until commit so concurrent payments serialize.
func (r *PgxBillRepository) RecordTransaction(ctx context.Context, txn domain.Transaction) (*domain.Bill, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + billColumns + ` FROM khatabook.bills WHERE bill_id = $1 FOR UPDATE;`
	m, err := scanBill(tx.QueryRow(ctx, lockQuery, txn.BillID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock bill %d: %w", txn.BillID, err)
	}
	bill := toDomainBill(m)

	if bill.Status == domain.StatusCancelled {
		return nil, fmt.Errorf("%w: bill %s is cancelled", apperrors.ErrValidation, bill.BillNumber)
	}
	if !txn.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}

	insertQuery := `
		INSERT INTO khatabook.transactions (bill_id, amount, direction, method, narration, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING transaction_id;
	`
	var transactionID int64
	err = tx.QueryRow(ctx, insertQuery,
		txn.BillID,
		txn.Amount,
		string(txn.Direction),
		string(txn.Method),
		txn.Narration,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	).Scan(&transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction for bill %d: %w", txn.BillID, err)
	}

	newPaid := bill.PaidAmount
	if txn.Direction == domain.DirectionOut {
		newPaid = newPaid.Sub(txn.Amount)
	} else {
		newPaid = newPaid.Add(txn.Amount)
	}
	newStatus := domain.NextPaymentStatus(bill.Status, bill.Amount, newPaid)

	updateQuery := `
		UPDATE khatabook.bills
		SET paid_amount = $1, status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE bill_id = $5;
	`
	if _, err := tx.Exec(ctx, updateQuery, newPaid, string(newStatus), txn.LastUpdatedAt, txn.LastUpdatedBy, txn.BillID); err != nil {
		return nil, fmt.Errorf("failed to settle bill %d: %w", txn.BillID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	bill.PaidAmount = newPaid
	bill.Status = newStatus
	bill.LastUpdatedAt = txn.LastUpdatedAt
	bill.LastUpdatedBy = txn.LastUpdatedBy
	return &bill, nil
}

func (r *PgxBillRepository) CancelBill(ctx context.Context, billID int64, updatedBy string) (*domain.Bill, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + billColumns + ` FROM khatabook.bills WHERE bill_id = $1 FOR UPDATE;`
	m, err := scanBill(tx.QueryRow(ctx, lockQuery, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock bill %d: %w", billID, err)
	}
	bill := toDomainBill(m)

	if !domain.CanCancel(bill.Status) {
		return nil, fmt.Errorf("%w: bill %s cannot be cancelled from status %s", apperrors.ErrValidation, bill.BillNumber, bill.Status)
	}

	updateQuery := `
		UPDATE khatabook.bills
		SET status = $1, last_updated_at = now(), last_updated_by = $2
		WHERE bill_id = $3;
	`
	if _, err := tx.Exec(ctx, updateQuery, string(domain.StatusCancelled), updatedBy, billID); err != nil {
		return nil, fmt.Errorf("failed to cancel bill %d: %w", billID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	bill.Status = domain.StatusCancelled
	bill.LastUpdatedBy = updatedBy
	return &bill, nil
}

func (r *PgxBillRepository) FindTransactionsByBillID(ctx context.Context, billID int64) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, bill_id, amount, direction, method, narration, created_at, created_by, last_updated_at, last_updated_by
		FROM khatabook.transactions
		WHERE bill_id = $1
		ORDER BY transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for bill %d: %w", billID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.TransactionID, &m.BillID, &m.Amount, &m.Direction, &m.Method, &m.Narration,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, domain.Transaction{
			TransactionID: m.TransactionID,
			BillID:        m.BillID,
			Amount:        m.Amount,
			Direction:     domain.TransactionDirection(m.Direction),
			Method:        domain.PaymentMethod(m.Method),
			Narration:     m.Narration,
			AuditFields: domain.AuditFields{
				CreatedAt:     m.CreatedAt,
				CreatedBy:     m.CreatedBy,
				LastUpdatedAt: m.LastUpdatedAt,
				LastUpdatedBy: m.LastUpdatedBy,
			},
		})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}
