package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Party is the persistence shape of a khatabook.parties row.
type Party struct {
	PartyID int64  `db:"party_id"`
	Name    string `db:"name"`
	Kind    string `db:"kind"`
	Phone   string `db:"phone"`
	Address string `db:"address"`
	AuditFields
}

// Bill is the persistence shape of a khatabook.bills row. PartyID is a real
// foreign key inside the khatabook schema; KhataID is plain data pointing at
// the primary schema.
type Bill struct {
	BillID      int64           `db:"bill_id"`
	BillNumber  string          `db:"bill_number"`
	PartyID     sql.NullInt64   `db:"party_id"`
	KhataID     int64           `db:"khata_id"`
	Amount      decimal.Decimal `db:"amount"`
	PaidAmount  decimal.Decimal `db:"paid_amount"`
	Status      string          `db:"status"`
	Description string          `db:"description"`
	BillDate    time.Time       `db:"bill_date"`
	AuditFields
}

// Transaction is the persistence shape of a khatabook.transactions row.
type Transaction struct {
	TransactionID int64           `db:"transaction_id"`
	BillID        int64           `db:"bill_id"`
	Amount        decimal.Decimal `db:"amount"`
	Direction     string          `db:"direction"`
	Method        string          `db:"method"`
	Narration     string          `db:"narration"`
	AuditFields
}
