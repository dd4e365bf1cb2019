package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxDocumentItem is one detail line sent to the tax document provider.
type TaxDocumentItem struct {
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Exempt    bool            `json:"exempt"`
}

// TaxDocumentRequest asks the provider to issue an electronic invoice.
type TaxDocumentRequest struct {
	TenantID      string            `json:"tenantID"`
	DocumentType  int               `json:"documentType"`
	IssueDate     time.Time         `json:"issueDate"`
	CustomerTaxID string            `json:"customerTaxID"`
	CustomerName  string            `json:"customerName"`
	NetAmount     decimal.Decimal   `json:"netAmount"`
	TaxAmount     decimal.Decimal   `json:"taxAmount"`
	TotalAmount   decimal.Decimal   `json:"totalAmount"`
	Items         []TaxDocumentItem `json:"items"`
}

// TaxDocumentResult is the provider's answer.
type TaxDocumentResult struct {
	Success     bool            `json:"success"`
	TrackID     string          `json:"trackId"`
	Folio       string          `json:"folio"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Message     string          `json:"message"`
}

// IssueInvoiceRequest is what an operator submits to issue and book a sales invoice.
type IssueInvoiceRequest struct {
	CustomerID    string
	CustomerTaxID string
	CustomerName  string
	IssueDate     time.Time
	DocumentType  int
	Description   string
	NetAmount     decimal.Decimal
	TaxAmount     decimal.Decimal
	Items         []TaxDocumentItem
}

// IssuedInvoice links the provider's document to the journal entry backing it.
type IssuedInvoice struct {
	TrackID        string          `json:"trackID"`
	Folio          string          `json:"folio"`
	ProviderStatus string          `json:"providerStatus"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	JournalEntryID string          `json:"journalEntryID"`
	EntryNumber    int64           `json:"entryNumber"`
}
