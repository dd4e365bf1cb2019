package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// JournalReader defines read operations for journal entry data
type JournalReader interface {
	// FindEntryByID retrieves an entry of the tenant, with its lines, by id.
	FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)

	// LockEntry retrieves an entry like FindEntryByID and holds a row lock on it until the
	// surrounding transaction ends.
	LockEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a page of entry headers ordered by (entry_date, number), with the
	// token for the next page.
	ListEntries(ctx context.Context, tenantID string, filter domain.EntryFilter) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal entry data
type JournalWriter interface {
	// NextEntryNumber atomically advances and returns the tenant's entry counter.
	// Must be called inside the transaction that saves the entry.
	NextEntryNumber(ctx context.Context, tenantID string) (int64, error)

	// SaveEntry persists an entry and its lines.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error

	// MarkPosted moves a DRAFT entry to POSTED. Returns ErrInvalidState if it is not DRAFT.
	MarkPosted(ctx context.Context, tenantID, entryID, postedBy string, postedAt time.Time) error

	// MarkReversed moves a POSTED entry to REVERSED, linking the reversal entry.
	// Returns ErrInvalidState if it is not POSTED.
	MarkReversed(ctx context.Context, tenantID, entryID, reversalID, updatedBy string, updatedAt time.Time) error

	// DeleteDraft removes a DRAFT entry and its lines. Returns ErrInvalidState if it is not DRAFT.
	DeleteDraft(ctx context.Context, tenantID, entryID string) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
// This is a facade for clients that need access to all operations
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
