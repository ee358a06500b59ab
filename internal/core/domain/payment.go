package domain

import "github.com/shopspring/decimal"

// PaymentMethod is how money changed hands.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodCheque       PaymentMethod = "CHEQUE"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// PaymentTarget names the primary-schema record a payment settles against.
type PaymentTarget string

const (
	TargetSale     PaymentTarget = "SALE"
	TargetPurchase PaymentTarget = "PURCHASE"
)

// Payment is a primary-schema payment against a sale order or thread
// purchase. Khatabook bill payments are Transactions, not Payments.
type Payment struct {
	PaymentID  int64           `json:"paymentID"`
	TargetKind PaymentTarget   `json:"targetKind"`
	TargetID   int64           `json:"targetID"`
	Amount     decimal.Decimal `json:"amount"`
	Method     PaymentMethod   `json:"method"`
	Reference  string          `json:"reference"` // cheque number, transfer id, etc.
	AuditFields
}
