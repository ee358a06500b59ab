package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the persistence shape of the polymorphic ledger_entries row.
// Notes and Reference are free text; khata association travels inside them as
// "khata:<id>" tags.
type LedgerEntry struct {
	EntryID         int64           `db:"entry_id"`
	EntryType       string          `db:"entry_type"`
	Amount          decimal.Decimal `db:"amount"`
	RemainingAmount decimal.Decimal `db:"remaining_amount"`
	Status          string          `db:"status"`
	Description     string          `db:"description"`
	Notes           string          `db:"notes"`
	Reference       string          `db:"reference"`
	EntryDate       time.Time       `db:"entry_date"`
	AuditFields
}
