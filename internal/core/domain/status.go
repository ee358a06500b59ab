package domain

import "github.com/shopspring/decimal"

// PaymentStatus is the settlement state of a bill, purchase, sale order or
// ledger entry: PENDING -> PARTIAL -> PAID, with CANCELLED reachable from
// PENDING and PARTIAL.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "PENDING"
	StatusPartial   PaymentStatus = "PARTIAL"
	StatusPaid      PaymentStatus = "PAID"
	StatusCancelled PaymentStatus = "CANCELLED"
)

// DerivePaymentStatus computes the settlement state from cumulative payments.
// Every call site derives status through here so the comparison is written
// exactly once.
func DerivePaymentStatus(amount, paid decimal.Decimal) PaymentStatus {
	switch {
	case paid.LessThanOrEqual(decimal.Zero):
		return StatusPending
	case paid.LessThan(amount):
		return StatusPartial
	default:
		return StatusPaid
	}
}

// NextPaymentStatus applies the cancellation rule on top of derivation:
// a CANCELLED record never transitions again.
func NextPaymentStatus(current PaymentStatus, amount, paid decimal.Decimal) PaymentStatus {
	if current == StatusCancelled {
		return StatusCancelled
	}
	return DerivePaymentStatus(amount, paid)
}

// CanCancel reports whether a record may move to CANCELLED. Fully paid
// records cannot be cancelled; payments would have to be reversed first and
// no reversal flow exists.
func CanCancel(current PaymentStatus) bool {
	return current == StatusPending || current == StatusPartial
}

// RemainingAmount is the outstanding portion of amount after payments,
// floored at zero for overpaid records.
func RemainingAmount(amount, paid decimal.Decimal) decimal.Decimal {
	remaining := amount.Sub(paid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
