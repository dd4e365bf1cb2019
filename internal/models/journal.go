package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	EntryID      string          `db:"entry_id"`
	TenantID     string          `db:"tenant_id"`
	Number       int64           `db:"number"`
	EntryDate    time.Time       `db:"entry_date"`
	PeriodID     string          `db:"period_id"`
	Description  string          `db:"description"`
	Reference    string          `db:"reference"`
	SourceType   string          `db:"source_type"`
	SourceID     string          `db:"source_id"`
	Status       string          `db:"status"`
	TotalDebit   decimal.Decimal `db:"total_debit"`
	TotalCredit  decimal.Decimal `db:"total_credit"`
	PostedBy     sql.NullString  `db:"posted_by"`
	PostedAt     sql.NullTime    `db:"posted_at"`
	ReversedByID sql.NullString  `db:"reversed_by_id"`
	ReversalOfID sql.NullString  `db:"reversal_of_id"`
	AuditFields
}

// JournalLine is a row of the journal_lines table.
type JournalLine struct {
	LineID         string          `db:"line_id"`
	EntryID        string          `db:"entry_id"`
	LineNumber     int             `db:"line_number"`
	AccountID      string          `db:"account_id"`
	Description    string          `db:"description"`
	Debit          decimal.Decimal `db:"debit"`
	Credit         decimal.Decimal `db:"credit"`
	CostCenterID   string          `db:"cost_center_id"`
	ThirdPartyID   string          `db:"third_party_id"`
	ThirdPartyType string          `db:"third_party_type"`
}
