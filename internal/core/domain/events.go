package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceIssuedEvent is raised once the tax document provider accepted a sales invoice.
type InvoiceIssuedEvent struct {
	DocumentID  string          `validate:"required"`
	Folio       string
	Date        time.Time       `validate:"required"`
	CustomerID  string
	Description string
	NetAmount   decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// InvoiceReceivedEvent records a supplier invoice against a caller-chosen expense account.
type InvoiceReceivedEvent struct {
	DocumentID       string          `validate:"required"`
	Folio            string
	Date             time.Time       `validate:"required"`
	SupplierID       string
	ExpenseAccountID string          `validate:"required"`
	Description      string
	NetAmount        decimal.Decimal
	TaxAmount        decimal.Decimal
	TotalAmount      decimal.Decimal
}

// PaymentReceivedEvent records a customer payment into a bank account.
type PaymentReceivedEvent struct {
	PaymentID     string          `validate:"required"`
	Date          time.Time       `validate:"required"`
	BankAccountID string          `validate:"required"` // account-plan id linked to the bank account
	CustomerID    string
	Description   string
	Amount        decimal.Decimal
}

// PaymentMadeEvent records a supplier payment out of a bank account.
type PaymentMadeEvent struct {
	PaymentID     string          `validate:"required"`
	Date          time.Time       `validate:"required"`
	BankAccountID string          `validate:"required"`
	SupplierID    string
	Description   string
	Amount        decimal.Decimal
}
