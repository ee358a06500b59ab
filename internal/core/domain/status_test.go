package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/sutratex/bunai-backend/internal/core/domain"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestDerivePaymentStatus(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		paid   int64
		want   domain.PaymentStatus
	}{
		{"no payments", 1000, 0, domain.StatusPending},
		{"negative paid is still pending", 1000, -50, domain.StatusPending},
		{"partial", 1000, 400, domain.StatusPartial},
		{"exactly paid", 1000, 1000, domain.StatusPaid},
		{"overpaid", 1000, 1200, domain.StatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DerivePaymentStatus(d(tt.amount), d(tt.paid)))
		})
	}
}

// Payments only accumulate, so as paid grows the status may only move
// forward through PENDING -> PARTIAL -> PAID.
func TestDerivePaymentStatus_Monotonic(t *testing.T) {
	rank := map[domain.PaymentStatus]int{
		domain.StatusPending: 0,
		domain.StatusPartial: 1,
		domain.StatusPaid:    2,
	}

	amount := d(1000)
	paid := decimal.Zero
	prev := domain.DerivePaymentStatus(amount, paid)
	for _, payment := range []int64{1, 99, 300, 400, 150, 49, 1, 500} {
		paid = paid.Add(d(payment))
		next := domain.DerivePaymentStatus(amount, paid)
		assert.GreaterOrEqual(t, rank[next], rank[prev],
			"status regressed from %s to %s at paid=%s", prev, next, paid)
		prev = next
	}
	assert.Equal(t, domain.StatusPaid, prev)
}

func TestNextPaymentStatus_CancelledIsSticky(t *testing.T) {
	assert.Equal(t, domain.StatusCancelled, domain.NextPaymentStatus(domain.StatusCancelled, d(1000), d(1000)))
	assert.Equal(t, domain.StatusPartial, domain.NextPaymentStatus(domain.StatusPending, d(1000), d(400)))
}

func TestCanCancel(t *testing.T) {
	assert.True(t, domain.CanCancel(domain.StatusPending))
	assert.True(t, domain.CanCancel(domain.StatusPartial))
	assert.False(t, domain.CanCancel(domain.StatusPaid))
	assert.False(t, domain.CanCancel(domain.StatusCancelled))
}

func TestRemainingAmount(t *testing.T) {
	assert.True(t, domain.RemainingAmount(d(1000), d(400)).Equal(d(600)))
	assert.True(t, domain.RemainingAmount(d(1000), d(1200)).IsZero())
}

// A 1000 bill paid in two installments of 400 and 600.
func TestBillSettlementScenario(t *testing.T) {
	amount := d(1000)

	paid := d(400)
	assert.Equal(t, domain.StatusPartial, domain.DerivePaymentStatus(amount, paid))
	assert.True(t, domain.RemainingAmount(amount, paid).Equal(d(600)))

	paid = paid.Add(d(600))
	assert.Equal(t, domain.StatusPaid, domain.DerivePaymentStatus(amount, paid))
	assert.True(t, domain.RemainingAmount(amount, paid).IsZero())
}
