package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Draft    EntryStatus = "DRAFT"
	Posted   EntryStatus = "POSTED"
	Reversed EntryStatus = "REVERSED"
)

// SourceType identifies what produced a journal entry.
type SourceType string

const (
	SourceManual          SourceType = "MANUAL"
	SourceInvoiceIssued   SourceType = "INVOICE_ISSUED"
	SourceInvoiceReceived SourceType = "INVOICE_RECEIVED"
	SourcePayment         SourceType = "PAYMENT"
)

// IsValid reports whether s is a known source type.
func (s SourceType) IsValid() bool {
	switch s {
	case SourceManual, SourceInvoiceIssued, SourceInvoiceReceived, SourcePayment:
		return true
	}
	return false
}

// ThirdPartyType classifies the counterparty attached to a line.
type ThirdPartyType string

const (
	ThirdPartyCustomer ThirdPartyType = "CUSTOMER"
	ThirdPartySupplier ThirdPartyType = "SUPPLIER"
)

// JournalEntry is the atomic unit of ledger mutation.
type JournalEntry struct {
	EntryID      string          `json:"entryID"`
	TenantID     string          `json:"tenantID"`
	Number       int64           `json:"number"`
	EntryDate    time.Time       `json:"entryDate"`
	PeriodID     string          `json:"periodID"`
	Description  string          `json:"description"`
	Reference    string          `json:"reference"`
	SourceType   SourceType      `json:"sourceType"`
	SourceID     string          `json:"sourceID"`
	Status       EntryStatus     `json:"status"`
	TotalDebit   decimal.Decimal `json:"totalDebit"`
	TotalCredit  decimal.Decimal `json:"totalCredit"`
	PostedBy     string          `json:"postedBy,omitempty"`
	PostedAt     *time.Time      `json:"postedAt,omitempty"`
	ReversedByID *string         `json:"reversedByID,omitempty"`
	ReversalOfID *string         `json:"reversalOfID,omitempty"`
	Lines        []JournalLine   `json:"lines,omitempty"`
	AuditFields
}

// JournalLine is one leg of a journal entry.
type JournalLine struct {
	LineID         string          `json:"lineID"`
	EntryID        string          `json:"entryID"`
	LineNumber     int             `json:"lineNumber"`
	AccountID      string          `json:"accountID"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	CostCenterID   string          `json:"costCenterID,omitempty"`
	ThirdPartyID   string          `json:"thirdPartyID,omitempty"`
	ThirdPartyType ThirdPartyType  `json:"thirdPartyType,omitempty"`
}

// JournalEntryInput is the unvalidated request to create an entry, produced either by an
// operator or by the auto-entry builder.
type JournalEntryInput struct {
	Date        time.Time
	Description string
	Reference   string
	SourceType  SourceType
	SourceID    string
	Lines       []JournalLineInput
}

// JournalLineInput is one requested leg of a JournalEntryInput.
type JournalLineInput struct {
	AccountID      string
	Description    string
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	CostCenterID   string
	ThirdPartyID   string
	ThirdPartyType ThirdPartyType
}

// Swapped returns a copy of the line with debit and credit exchanged.
func (l JournalLine) Swapped() JournalLineInput {
	return JournalLineInput{
		AccountID:      l.AccountID,
		Description:    l.Description,
		Debit:          l.Credit,
		Credit:         l.Debit,
		CostCenterID:   l.CostCenterID,
		ThirdPartyID:   l.ThirdPartyID,
		ThirdPartyType: l.ThirdPartyType,
	}
}

// EntryFilter narrows an entry listing.
type EntryFilter struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	Status     EntryStatus
	SourceType SourceType
	Limit      int
	NextToken  *string
}
