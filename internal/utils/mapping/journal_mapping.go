package mapping

import (
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to a model JournalEntry.
// Lines are mapped separately with ToModelJournalLine.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:      d.EntryID,
		TenantID:     d.TenantID,
		Number:       d.Number,
		EntryDate:    d.EntryDate,
		PeriodID:     d.PeriodID,
		Description:  d.Description,
		Reference:    d.Reference,
		SourceType:   string(d.SourceType),
		SourceID:     d.SourceID,
		Status:       string(d.Status),
		TotalDebit:   d.TotalDebit,
		TotalCredit:  d.TotalCredit,
		PostedBy:     toNullString(d.PostedBy),
		PostedAt:     toNullTime(d.PostedAt),
		ReversedByID: toNullStringPtr(d.ReversedByID),
		ReversalOfID: toNullStringPtr(d.ReversalOfID),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry without lines.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:      m.EntryID,
		TenantID:     m.TenantID,
		Number:       m.Number,
		EntryDate:    m.EntryDate,
		PeriodID:     m.PeriodID,
		Description:  m.Description,
		Reference:    m.Reference,
		SourceType:   domain.SourceType(m.SourceType),
		SourceID:     m.SourceID,
		Status:       domain.EntryStatus(m.Status),
		TotalDebit:   m.TotalDebit,
		TotalCredit:  m.TotalCredit,
		PostedBy:     m.PostedBy.String,
		PostedAt:     fromNullTime(m.PostedAt),
		ReversedByID: fromNullStringPtr(m.ReversedByID),
		ReversalOfID: fromNullStringPtr(m.ReversalOfID),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:         d.LineID,
		EntryID:        d.EntryID,
		LineNumber:     d.LineNumber,
		AccountID:      d.AccountID,
		Description:    d.Description,
		Debit:          d.Debit,
		Credit:         d.Credit,
		CostCenterID:   d.CostCenterID,
		ThirdPartyID:   d.ThirdPartyID,
		ThirdPartyType: string(d.ThirdPartyType),
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:         m.LineID,
		EntryID:        m.EntryID,
		LineNumber:     m.LineNumber,
		AccountID:      m.AccountID,
		Description:    m.Description,
		Debit:          m.Debit,
		Credit:         m.Credit,
		CostCenterID:   m.CostCenterID,
		ThirdPartyID:   m.ThirdPartyID,
		ThirdPartyType: domain.ThirdPartyType(m.ThirdPartyType),
	}
}
