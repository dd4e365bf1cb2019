package services

import (
	"context"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	// GetEntry retrieves an entry with its lines.
	GetEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a page of entry headers and the token for the next page.
	ListEntries(ctx context.Context, tenantID string, filter domain.EntryFilter) ([]domain.JournalEntry, *string, error)
}

// JournalWriterSvc defines the DRAFT -> POSTED -> REVERSED lifecycle of journal entries
type JournalWriterSvc interface {
	// CreateManualEntry validates input and persists it as a DRAFT with the next entry number.
	CreateManualEntry(ctx context.Context, tenantID, actorID string, input domain.JournalEntryInput) (*domain.JournalEntry, error)

	// PostEntry moves a DRAFT entry to POSTED.
	PostEntry(ctx context.Context, tenantID, entryID, actorID string) (*domain.JournalEntry, error)

	// ReverseEntry creates and posts a balance-swapped entry dated reverseDate and marks the
	// original REVERSED. Returns the reversal entry.
	ReverseEntry(ctx context.Context, tenantID, entryID, actorID string, reverseDate time.Time) (*domain.JournalEntry, error)

	// DiscardEntry deletes a DRAFT entry.
	DiscardEntry(ctx context.Context, tenantID, entryID, actorID string) error
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
