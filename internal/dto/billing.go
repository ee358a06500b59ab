package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// CreatePartyRequest defines the data needed to create a khatabook party.
type CreatePartyRequest struct {
	Name    string           `json:"name" binding:"required"`
	Kind    domain.PartyKind `json:"kind" binding:"required,partykind"`
	Phone   string           `json:"phone"`
	Address string           `json:"address"`
}

// UpdatePartyRequest defines the mutable fields of a party.
type UpdatePartyRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID   int64            `json:"partyID"`
	Name      string           `json:"name"`
	Kind      domain.PartyKind `json:"kind"`
	Phone     string           `json:"phone"`
	Address   string           `json:"address"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:   p.PartyID,
		Name:      p.Name,
		Kind:      p.Kind,
		Phone:     p.Phone,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
	}
}

// ListPartiesResponse wraps the list of parties.
type ListPartiesResponse struct {
	Parties []PartyResponse `json:"parties"`
}

// ToListPartiesResponse converts a slice of domain.Party to ListPartiesResponse.
func ToListPartiesResponse(parties []domain.Party) ListPartiesResponse {
	res := make([]PartyResponse, len(parties))
	for i, p := range parties {
		res[i] = ToPartyResponse(&p)
	}
	return ListPartiesResponse{Parties: res}
}

// ListPartiesParams defines query parameters for listing parties.
type ListPartiesParams struct {
	ListParams
	Kind *string `form:"kind"`
}

// CreateBillRequest defines the data needed to create a khatabook bill.
// KhataID names the primary-schema book the bill will be mirrored into;
// when omitted the configured default khata is used.
type CreateBillRequest struct {
	BillNumber  string          `json:"billNumber" binding:"required"`
	PartyID     *int64          `json:"partyId"`
	KhataID     *int64          `json:"khataId"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	BillDate    *time.Time      `json:"billDate"`
}

// BillResponse defines the data returned for a bill.
type BillResponse struct {
	BillID      int64           `json:"billID"`
	BillNumber  string          `json:"billNumber"`
	PartyID     *int64          `json:"partyID,omitempty"`
	KhataID     int64           `json:"khataID"`
	Amount      decimal.Decimal `json:"amount"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	Remaining   decimal.Decimal `json:"remainingAmount"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	BillDate    time.Time       `json:"billDate"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToBillResponse converts a domain.Bill to BillResponse DTO
func ToBillResponse(b *domain.Bill) BillResponse {
	return BillResponse{
		BillID:      b.BillID,
		BillNumber:  b.BillNumber,
		PartyID:     b.PartyID,
		KhataID:     b.KhataID,
		Amount:      b.Amount,
		PaidAmount:  b.PaidAmount,
		Remaining:   domain.RemainingAmount(b.Amount, b.PaidAmount),
		Status:      string(b.Status),
		Description: b.Description,
		BillDate:    b.BillDate,
		CreatedAt:   b.CreatedAt,
	}
}

// ListBillsResponse wraps the list of bills.
type ListBillsResponse struct {
	Bills []BillResponse `json:"bills"`
}

// ToListBillsResponse converts a slice of domain.Bill to ListBillsResponse.
func ToListBillsResponse(bills []domain.Bill) ListBillsResponse {
	res := make([]BillResponse, len(bills))
	for i, b := range bills {
		res[i] = ToBillResponse(&b)
	}
	return ListBillsResponse{Bills: res}
}

// ListBillsParams defines query parameters for listing bills.
type ListBillsParams struct {
	ListParams
	Status  *string `form:"status"`
	PartyID *int64  `form:"partyId"`
}

// RecordTransactionRequest defines a payment event against a bill.
type RecordTransactionRequest struct {
	Amount    decimal.Decimal             `json:"amount" binding:"required"`
	Direction domain.TransactionDirection `json:"direction" binding:"omitempty,oneof=IN OUT"`
	Method    domain.PaymentMethod        `json:"method" binding:"omitempty,oneof=CASH CHEQUE BANK_TRANSFER"`
	Narration string                      `json:"narration"`
}

// TransactionResponse defines the data returned for a bill transaction.
type TransactionResponse struct {
	TransactionID int64           `json:"transactionID"`
	BillID        int64           `json:"billID"`
	Amount        decimal.Decimal `json:"amount"`
	Direction     string          `json:"direction"`
	Method        string          `json:"method"`
	Narration     string          `json:"narration"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		BillID:        t.BillID,
		Amount:        t.Amount,
		Direction:     string(t.Direction),
		Method:        string(t.Method),
		Narration:     t.Narration,
		CreatedAt:     t.CreatedAt,
	}
}

// ListTransactionsResponse wraps the list of bill transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts transactions to their list DTO.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(&t)
	}
	return ListTransactionsResponse{Transactions: res}
}
