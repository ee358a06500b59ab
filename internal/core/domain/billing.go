package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartyKind distinguishes the two sides of the business.
type PartyKind string

const (
	PartyVendor   PartyKind = "VENDOR"
	PartyCustomer PartyKind = "CUSTOMER"
)

// Party is a vendor or customer in the normalized khatabook schema.
type Party struct {
	PartyID int64     `json:"partyID"`
	Name    string    `json:"name"`
	Kind    PartyKind `json:"kind"`
	Phone   string    `json:"phone"`
	Address string    `json:"address"`
	AuditFields
}

// Bill is an accounting record of money owed, stored in the khatabook schema
// with a real party foreign key. KhataID names the primary-schema khata the
// bill is mirrored into by the synchronizer; it is data here, not a foreign
// key across schemas.
type Bill struct {
	BillID      int64           `json:"billID"`
	BillNumber  string          `json:"billNumber"` // unique; "BILL-<BillNumber>" is the sync idempotence key
	PartyID     *int64          `json:"partyID,omitempty"`
	KhataID     int64           `json:"khataID"`
	Amount      decimal.Decimal `json:"amount"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	Status      PaymentStatus   `json:"status"`
	Description string          `json:"description"`
	BillDate    time.Time       `json:"billDate"`
	AuditFields
}

// TransactionDirection marks money flowing in (received) or out (paid).
type TransactionDirection string

const (
	DirectionIn  TransactionDirection = "IN"
	DirectionOut TransactionDirection = "OUT"
)

// Transaction is a single payment event against a bill in the khatabook
// schema. Recording one updates the bill's paid amount and status in the
// same database transaction.
type Transaction struct {
	TransactionID int64                `json:"transactionID"`
	BillID        int64                `json:"billID"`
	Amount        decimal.Decimal      `json:"amount"`
	Direction     TransactionDirection `json:"direction"`
	Method        PaymentMethod        `json:"method"`
	Narration     string               `json:"narration"`
	AuditFields
}
