package dto

import (
	"fmt"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceIssuedRequest records a sales invoice already accepted by the tax document provider.
type InvoiceIssuedRequest struct {
	DocumentID  string          `json:"documentID" binding:"required"`
	Folio       string          `json:"folio"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	CustomerID  string          `json:"customerID"`
	Description string          `json:"description"`
	NetAmount   decimal.Decimal `json:"netAmount"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// ToEvent converts the request into a domain event.
func (r InvoiceIssuedRequest) ToEvent() (domain.InvoiceIssuedEvent, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return domain.InvoiceIssuedEvent{}, fmt.Errorf("%w: invalid date", apperrors.ErrValidation)
	}
	return domain.InvoiceIssuedEvent{
		DocumentID:  r.DocumentID,
		Folio:       r.Folio,
		Date:        date,
		CustomerID:  r.CustomerID,
		Description: r.Description,
		NetAmount:   r.NetAmount,
		TaxAmount:   r.TaxAmount,
		TotalAmount: r.TotalAmount,
	}, nil
}

// InvoiceReceivedRequest records a supplier invoice.
type InvoiceReceivedRequest struct {
	DocumentID       string          `json:"documentID" binding:"required"`
	Folio            string          `json:"folio"`
	Date             string          `json:"date" binding:"required,datetime=2006-01-02"`
	SupplierID       string          `json:"supplierID"`
	ExpenseAccountID string          `json:"expenseAccountID" binding:"required"`
	Description      string          `json:"description"`
	NetAmount        decimal.Decimal `json:"netAmount"`
	TaxAmount        decimal.Decimal `json:"taxAmount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
}

// ToEvent converts the request into a domain event.
func (r InvoiceReceivedRequest) ToEvent() (domain.InvoiceReceivedEvent, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return domain.InvoiceReceivedEvent{}, fmt.Errorf("%w: invalid date", apperrors.ErrValidation)
	}
	return domain.InvoiceReceivedEvent{
		DocumentID:       r.DocumentID,
		Folio:            r.Folio,
		Date:             date,
		SupplierID:       r.SupplierID,
		ExpenseAccountID: r.ExpenseAccountID,
		Description:      r.Description,
		NetAmount:        r.NetAmount,
		TaxAmount:        r.TaxAmount,
		TotalAmount:      r.TotalAmount,
	}, nil
}

// PaymentRequest records a payment in or out of a bank account.
// PartyID is the customer for received payments and the supplier for payments made.
type PaymentRequest struct {
	PaymentID     string          `json:"paymentID" binding:"required"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	BankAccountID string          `json:"bankAccountID" binding:"required"`
	PartyID       string          `json:"partyID"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
}

// ToReceivedEvent converts the request into a payment-received event.
func (r PaymentRequest) ToReceivedEvent() (domain.PaymentReceivedEvent, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return domain.PaymentReceivedEvent{}, fmt.Errorf("%w: invalid date", apperrors.ErrValidation)
	}
	return domain.PaymentReceivedEvent{
		PaymentID:     r.PaymentID,
		Date:          date,
		BankAccountID: r.BankAccountID,
		CustomerID:    r.PartyID,
		Description:   r.Description,
		Amount:        r.Amount,
	}, nil
}

// ToMadeEvent converts the request into a payment-made event.
func (r PaymentRequest) ToMadeEvent() (domain.PaymentMadeEvent, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return domain.PaymentMadeEvent{}, fmt.Errorf("%w: invalid date", apperrors.ErrValidation)
	}
	return domain.PaymentMadeEvent{
		PaymentID:     r.PaymentID,
		Date:          date,
		BankAccountID: r.BankAccountID,
		SupplierID:    r.PartyID,
		Description:   r.Description,
		Amount:        r.Amount,
	}, nil
}

// EventRecordedResponse gives the upstream record the entry that backs it.
type EventRecordedResponse struct {
	JournalEntryID string `json:"journalEntryID"`
	Number         int64  `json:"number"`
	Status         string `json:"status"`
}

// IssueInvoiceItemRequest is a detail line of an invoice to issue.
type IssueInvoiceItemRequest struct {
	Name      string          `json:"name" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Exempt    bool            `json:"exempt"`
}

// IssueInvoiceRequest asks the service to issue a sales invoice and book it.
type IssueInvoiceRequest struct {
	CustomerID    string                    `json:"customerID"`
	CustomerTaxID string                    `json:"customerTaxID" binding:"required"`
	CustomerName  string                    `json:"customerName" binding:"required"`
	IssueDate     string                    `json:"issueDate" binding:"required,datetime=2006-01-02"`
	DocumentType  int                       `json:"documentType" binding:"required"`
	Description   string                    `json:"description"`
	NetAmount     decimal.Decimal           `json:"netAmount"`
	TaxAmount     decimal.Decimal           `json:"taxAmount"`
	Items         []IssueInvoiceItemRequest `json:"items" binding:"dive"`
}

// ToDomain converts the request into the domain request.
func (r IssueInvoiceRequest) ToDomain() (domain.IssueInvoiceRequest, error) {
	date, err := ParseDate(r.IssueDate)
	if err != nil {
		return domain.IssueInvoiceRequest{}, fmt.Errorf("%w: invalid issueDate", apperrors.ErrValidation)
	}
	items := make([]domain.TaxDocumentItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.TaxDocumentItem{Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice, Exempt: it.Exempt}
	}
	return domain.IssueInvoiceRequest{
		CustomerID:    r.CustomerID,
		CustomerTaxID: r.CustomerTaxID,
		CustomerName:  r.CustomerName,
		IssueDate:     date,
		DocumentType:  r.DocumentType,
		Description:   r.Description,
		NetAmount:     r.NetAmount,
		TaxAmount:     r.TaxAmount,
		Items:         items,
	}, nil
}
