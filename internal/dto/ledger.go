package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// CreateKhataRequest defines the data needed to open a new account book.
type CreateKhataRequest struct {
	Name  string `json:"name" binding:"required"`
	Notes string `json:"notes"`
}

// KhataResponse defines the data returned for a khata.
type KhataResponse struct {
	KhataID   int64     `json:"khataID"`
	Name      string    `json:"name"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ToKhataResponse converts a domain.Khata to KhataResponse DTO
func ToKhataResponse(k *domain.Khata) KhataResponse {
	return KhataResponse{
		KhataID:   k.KhataID,
		Name:      k.Name,
		Notes:     k.Notes,
		CreatedAt: k.CreatedAt,
		CreatedBy: k.CreatedBy,
	}
}

// ListKhatasResponse wraps the list of khatas.
type ListKhatasResponse struct {
	Khatas []KhataResponse `json:"khatas"`
}

// ToListKhatasResponse converts a slice of domain.Khata to ListKhatasResponse.
func ToListKhatasResponse(khatas []domain.Khata) ListKhatasResponse {
	res := make([]KhataResponse, len(khatas))
	for i, k := range khatas {
		res[i] = ToKhataResponse(&k)
	}
	return ListKhatasResponse{Khatas: res}
}

// KhataSummaryResponse mirrors domain.KhataSummary.
type KhataSummaryResponse struct {
	KhataID          int64           `json:"khataID"`
	Name             string          `json:"name"`
	EntryCount       int64           `json:"entryCount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	PendingCount     int64           `json:"pendingCount"`
	PaidCount        int64           `json:"paidCount"`
}

// ToKhataSummaryResponse converts a domain.KhataSummary to its DTO.
func ToKhataSummaryResponse(s *domain.KhataSummary) KhataSummaryResponse {
	return KhataSummaryResponse(*s)
}

// CreateEntryRequest defines the data needed to create a ledger entry.
// KhataID is optional; when set, the service appends the "khata:<id>" tag to
// the entry's notes so the entry shows up in that book's filtered view.
type CreateEntryRequest struct {
	EntryType   domain.EntryType `json:"entryType" binding:"required,entrytype"`
	Amount      decimal.Decimal  `json:"amount" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Notes       string           `json:"notes"`
	Reference   string           `json:"reference"`
	EntryDate   *time.Time       `json:"entryDate"`
	KhataID     *int64           `json:"khataId"`
}

// UpdateEntryRequest defines the mutable fields of a ledger entry.
// Pointers distinguish omitted fields from zero values.
type UpdateEntryRequest struct {
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
	Reference   *string `json:"reference"`
}

// EntryResponse defines the data returned for a ledger entry.
type EntryResponse struct {
	EntryID         int64            `json:"entryID"`
	EntryType       domain.EntryType `json:"entryType"`
	Amount          decimal.Decimal  `json:"amount"`
	RemainingAmount decimal.Decimal  `json:"remainingAmount"`
	Status          string           `json:"status"`
	Description     string           `json:"description"`
	Notes           string           `json:"notes"`
	Reference       string           `json:"reference"`
	EntryDate       time.Time        `json:"entryDate"`
	CreatedAt       time.Time        `json:"createdAt"`
	CreatedBy       string           `json:"createdBy"`
	LastUpdatedAt   time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy   string           `json:"lastUpdatedBy"`
}

// ToEntryResponse converts a domain.LedgerEntry to EntryResponse DTO
func ToEntryResponse(e *domain.LedgerEntry) EntryResponse {
	return EntryResponse{
		EntryID:         e.EntryID,
		EntryType:       e.EntryType,
		Amount:          e.Amount,
		RemainingAmount: e.RemainingAmount,
		Status:          string(e.Status),
		Description:     e.Description,
		Notes:           e.Notes,
		Reference:       e.Reference,
		EntryDate:       e.EntryDate,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
		LastUpdatedAt:   e.LastUpdatedAt,
		LastUpdatedBy:   e.LastUpdatedBy,
	}
}

// ListEntriesResponse wraps the list of entries.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToListEntriesResponse converts a slice of domain.LedgerEntry to ListEntriesResponse.
func ToListEntriesResponse(entries []domain.LedgerEntry) ListEntriesResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToEntryResponse(&e)
	}
	return ListEntriesResponse{Entries: res}
}

// ListEntriesParams defines query parameters for listing ledger entries.
type ListEntriesParams struct {
	ListParams
	KhataID   *int64  `form:"khataId"`
	EntryType *string `form:"entryType"`
	Status    *string `form:"status"`
}

// SyncResultResponse mirrors domain.SyncResult.
type SyncResultResponse struct {
	Synced  int `json:"synced"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// BackfillResultResponse mirrors domain.BackfillResult.
type BackfillResultResponse struct {
	Tagged  int   `json:"tagged"`
	KhataID int64 `json:"khataID"`
}
