package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest is one leg of a manual entry.
type CreateJournalLineRequest struct {
	AccountID      string                `json:"accountID" binding:"required"`
	Description    string                `json:"description"`
	Debit          decimal.Decimal       `json:"debit"`
	Credit         decimal.Decimal       `json:"credit"`
	CostCenterID   string                `json:"costCenterID"`
	ThirdPartyID   string                `json:"thirdPartyID"`
	ThirdPartyType domain.ThirdPartyType `json:"thirdPartyType" binding:"omitempty,oneof=CUSTOMER SUPPLIER"`
}

// CreateJournalEntryRequest defines the data needed to create a manual entry.
// Line count and balance are checked by the service so the caller gets the ledger's own message.
type CreateJournalEntryRequest struct {
	Date        string                     `json:"date" binding:"required,datetime=2006-01-02"`
	Description string                     `json:"description" binding:"required,max=500"`
	Reference   string                     `json:"reference" binding:"max=100"`
	SourceType  domain.SourceType          `json:"sourceType" binding:"omitempty,oneof=MANUAL INVOICE_ISSUED INVOICE_RECEIVED PAYMENT"`
	SourceID    string                     `json:"sourceID"`
	Lines       []CreateJournalLineRequest `json:"lines" binding:"dive"`
}

// ToInput converts the request into the domain input consumed by the journal service.
func (r CreateJournalEntryRequest) ToInput() (domain.JournalEntryInput, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return domain.JournalEntryInput{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, r.Date)
	}
	sourceType := r.SourceType
	if sourceType == "" {
		sourceType = domain.SourceManual
	}
	lines := make([]domain.JournalLineInput, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.JournalLineInput{
			AccountID:      l.AccountID,
			Description:    l.Description,
			Debit:          l.Debit,
			Credit:         l.Credit,
			CostCenterID:   l.CostCenterID,
			ThirdPartyID:   l.ThirdPartyID,
			ThirdPartyType: l.ThirdPartyType,
		}
	}
	return domain.JournalEntryInput{
		Date:        date,
		Description: r.Description,
		Reference:   r.Reference,
		SourceType:  sourceType,
		SourceID:    r.SourceID,
		Lines:       lines,
	}, nil
}

// ReverseJournalEntryRequest carries the date the reversal is booked on.
type ReverseJournalEntryRequest struct {
	ReverseDate string `json:"reverseDate" binding:"required,datetime=2006-01-02"`
}

// ListJournalEntriesParams defines query parameters for listing entries.
type ListJournalEntriesParams struct {
	DateFrom   string  `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string  `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	Status     string  `form:"status" binding:"omitempty,oneof=DRAFT POSTED REVERSED"`
	SourceType string  `form:"sourceType" binding:"omitempty,oneof=MANUAL INVOICE_ISSUED INVOICE_RECEIVED PAYMENT"`
	Limit      int     `form:"limit,default=20" binding:"min=1,max=200"`
	NextToken  *string `form:"nextToken"`
}

// ToFilter converts the query parameters into a domain filter.
func (p ListJournalEntriesParams) ToFilter() (domain.EntryFilter, error) {
	from, err := ParseOptionalDate(p.DateFrom)
	if err != nil {
		return domain.EntryFilter{}, fmt.Errorf("%w: invalid dateFrom", apperrors.ErrValidation)
	}
	to, err := ParseOptionalDate(p.DateTo)
	if err != nil {
		return domain.EntryFilter{}, fmt.Errorf("%w: invalid dateTo", apperrors.ErrValidation)
	}
	return domain.EntryFilter{
		DateFrom:   from,
		DateTo:     to,
		Status:     domain.EntryStatus(p.Status),
		SourceType: domain.SourceType(p.SourceType),
		Limit:      p.Limit,
		NextToken:  p.NextToken,
	}, nil
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID         string                `json:"lineID"`
	LineNumber     int                   `json:"lineNumber"`
	AccountID      string                `json:"accountID"`
	Description    string                `json:"description,omitempty"`
	Debit          decimal.Decimal       `json:"debit"`
	Credit         decimal.Decimal       `json:"credit"`
	CostCenterID   string                `json:"costCenterID,omitempty"`
	ThirdPartyID   string                `json:"thirdPartyID,omitempty"`
	ThirdPartyType domain.ThirdPartyType `json:"thirdPartyType,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID      string                `json:"entryID"`
	Number       int64                 `json:"number"`
	Date         string                `json:"date"`
	PeriodID     string                `json:"periodID"`
	Description  string                `json:"description"`
	Reference    string                `json:"reference,omitempty"`
	SourceType   domain.SourceType     `json:"sourceType"`
	SourceID     string                `json:"sourceID,omitempty"`
	Status       domain.EntryStatus    `json:"status"`
	TotalDebit   decimal.Decimal       `json:"totalDebit"`
	TotalCredit  decimal.Decimal       `json:"totalCredit"`
	PostedBy     string                `json:"postedBy,omitempty"`
	PostedAt     *time.Time            `json:"postedAt,omitempty"`
	ReversedByID *string               `json:"reversedByID,omitempty"`
	ReversalOfID *string               `json:"reversalOfID,omitempty"`
	Lines        []JournalLineResponse `json:"lines,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	CreatedBy    string                `json:"createdBy"`
}

// ListJournalEntriesResponse wraps a page of entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	res := JournalEntryResponse{
		EntryID:      e.EntryID,
		Number:       e.Number,
		Date:         FormatDate(e.EntryDate),
		PeriodID:     e.PeriodID,
		Description:  e.Description,
		Reference:    e.Reference,
		SourceType:   e.SourceType,
		SourceID:     e.SourceID,
		Status:       e.Status,
		TotalDebit:   e.TotalDebit,
		TotalCredit:  e.TotalCredit,
		PostedBy:     e.PostedBy,
		PostedAt:     e.PostedAt,
		ReversedByID: e.ReversedByID,
		ReversalOfID: e.ReversalOfID,
		CreatedAt:    e.CreatedAt,
		CreatedBy:    e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		res.Lines = make([]JournalLineResponse, len(e.Lines))
		for i, l := range e.Lines {
			res.Lines[i] = JournalLineResponse{
				LineID:         l.LineID,
				LineNumber:     l.LineNumber,
				AccountID:      l.AccountID,
				Description:    l.Description,
				Debit:          l.Debit,
				Credit:         l.Credit,
				CostCenterID:   l.CostCenterID,
				ThirdPartyID:   l.ThirdPartyID,
				ThirdPartyType: l.ThirdPartyType,
			}
		}
	}
	return res
}

// ToListJournalEntriesResponse converts a page of entries.
func ToListJournalEntriesResponse(entries []domain.JournalEntry, nextToken *string) ListJournalEntriesResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToJournalEntryResponse(&e)
	}
	return ListJournalEntriesResponse{Entries: res, NextToken: nextToken}
}
