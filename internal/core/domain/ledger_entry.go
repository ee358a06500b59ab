package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType is the discriminant of the polymorphic ledger entry row.
type EntryType string

const (
	EntryKhata       EntryType = "KHATA"
	EntryBill        EntryType = "BILL"
	EntryTransaction EntryType = "TRANSACTION"
	EntryCheque      EntryType = "CHEQUE"
	EntryInventory   EntryType = "INVENTORY"
	EntryBank        EntryType = "BANK"
	EntryPayable     EntryType = "PAYABLE"
	EntryReceivable  EntryType = "RECEIVABLE"
)

// EntryTypes lists every valid discriminant, for validation.
var EntryTypes = []EntryType{
	EntryKhata, EntryBill, EntryTransaction, EntryCheque,
	EntryInventory, EntryBank, EntryPayable, EntryReceivable,
}

// LedgerEntry is one row of the unified ledger view. A khata is not a table
// of its own: it is a LedgerEntry with EntryType KHATA whose name lives in
// Description. Ordinary entries reference their khata through the
// "khata:<id>" tag inside Notes and/or Reference, never through a column.
type LedgerEntry struct {
	EntryID         int64           `json:"entryID"`
	EntryType       EntryType       `json:"entryType"`
	Amount          decimal.Decimal `json:"amount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"` // outstanding portion; <= Amount for well-formed rows
	Status          PaymentStatus   `json:"status"`
	Description     string          `json:"description"`
	Notes           string          `json:"notes"`     // free text, may carry khata/party/synced tags
	Reference       string          `json:"reference"` // free text, canonical "BILL-<n>" for synced bills
	EntryDate       time.Time       `json:"entryDate"`
	AuditFields
}

// Khata is the account-book view of a KHATA sentinel entry.
type Khata struct {
	KhataID   int64     `json:"khataID"`
	Name      string    `json:"name"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// KhataSummary aggregates the entries tagged to one khata.
type KhataSummary struct {
	KhataID          int64           `json:"khataID"`
	Name             string          `json:"name"`
	EntryCount       int64           `json:"entryCount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	PendingCount     int64           `json:"pendingCount"`
	PaidCount        int64           `json:"paidCount"`
}

// EntryListFilter narrows a unified ledger listing.
type EntryListFilter struct {
	KhataID   *int64
	EntryType *EntryType
	Status    *PaymentStatus
	Limit     int
	Offset    int
}

// SyncResult reports the outcome of one bill synchronization run. Only
// aggregate counts are surfaced; individual row failures are logged and
// skipped.
type SyncResult struct {
	Synced  int `json:"synced"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// BackfillResult reports the outcome of a default-khata backfill run.
type BackfillResult struct {
	Tagged  int   `json:"tagged"`
	KhataID int64 `json:"khataID"`
}
