package services

import (
	"context"

	"github.com/sutratex/bunai-backend/internal/core/domain"
	"github.com/sutratex/bunai-backend/internal/dto"
)

// KhataReaderSvc defines read operations over khatas (account books).
type KhataReaderSvc interface {
	// GetKhataByID retrieves one khata.
	GetKhataByID(ctx context.Context, khataID int64) (*domain.Khata, error)

	// ListKhatas retrieves a paginated khata list.
	ListKhatas(ctx context.Context, limit, offset int) ([]domain.Khata, error)

	// GetKhataSummary aggregates the entries tagged to a khata.
	GetKhataSummary(ctx context.Context, khataID int64) (*domain.KhataSummary, error)

	// ListKhataEntries lists the entries tagged to a khata, using the
	// boundary-aware tag filter.
	ListKhataEntries(ctx context.Context, khataID int64, limit, offset int) ([]domain.LedgerEntry, error)
}

// KhataWriterSvc defines write operations for khatas.
type KhataWriterSvc interface {
	// CreateKhata creates the KHATA sentinel entry for a new account book.
	CreateKhata(ctx context.Context, req dto.CreateKhataRequest, creatorUserID string) (*domain.Khata, error)
}

// LedgerEntryReaderSvc defines read operations over the unified entry list.
type LedgerEntryReaderSvc interface {
	GetEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context, filter domain.EntryListFilter) ([]domain.LedgerEntry, error)
}

// LedgerEntryWriterSvc defines write operations for ledger entries.
type LedgerEntryWriterSvc interface {
	// CreateEntry creates a ledger entry. When the request names a khata the
	// association tag is appended to the entry's notes.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.LedgerEntry, error)

	// UpdateEntry updates an entry's mutable fields.
	UpdateEntry(ctx context.Context, entryID int64, req dto.UpdateEntryRequest, updaterUserID string) (*domain.LedgerEntry, error)

	// CancelEntry moves a PENDING/PARTIAL entry to CANCELLED.
	CancelEntry(ctx context.Context, entryID int64, updaterUserID string) (*domain.LedgerEntry, error)
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	KhataReaderSvc
	KhataWriterSvc
	LedgerEntryReaderSvc
	LedgerEntryWriterSvc
}
