package repositories

import (
	"context"

	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// LedgerEntryReader defines read operations over the unified ledger view.
type LedgerEntryReader interface {
	// FindEntryByID retrieves a single entry of any type.
	FindEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error)

	// FindEntryByReference retrieves the entry with the exact reference
	// string, the idempotence key used by bill synchronization.
	FindEntryByReference(ctx context.Context, reference string) (*domain.LedgerEntry, error)

	// ListEntries retrieves a paginated, filtered entry list. A KhataID
	// filter matches the khata tag in notes or reference with a digit
	// boundary, never by plain substring.
	ListEntries(ctx context.Context, filter domain.EntryListFilter) ([]domain.LedgerEntry, error)

	// ListEntriesWithoutKhataTag retrieves non-KHATA entries whose notes and
	// reference both lack any khata tag, for backfilling.
	ListEntriesWithoutKhataTag(ctx context.Context, limit int) ([]domain.LedgerEntry, error)
}

// LedgerEntryWriter defines write operations for ledger entries.
type LedgerEntryWriter interface {
	// SaveEntry persists a new entry and returns its generated id.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) (int64, error)

	// UpdateEntry updates the mutable fields of an entry (description,
	// notes, reference, status, remaining amount).
	UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error
}

// KhataReader defines read operations on KHATA sentinel rows.
type KhataReader interface {
	// FindKhataByID retrieves one khata. ErrNotFound is returned when the
	// entry exists but is not of type KHATA.
	FindKhataByID(ctx context.Context, khataID int64) (*domain.Khata, error)

	// ListKhatas retrieves all khatas, paginated.
	ListKhatas(ctx context.Context, limit, offset int) ([]domain.Khata, error)

	// SummarizeKhata aggregates the entries tagged to a khata.
	SummarizeKhata(ctx context.Context, khataID int64) (*domain.KhataSummary, error)
}

// LedgerEntryRepositoryFacade combines all ledger-entry repository interfaces.
type LedgerEntryRepositoryFacade interface {
	LedgerEntryReader
	LedgerEntryWriter
	KhataReader
}
