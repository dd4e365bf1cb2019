package providers

import (
	"context"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// TaxDocumentProvider issues legally recognized electronic invoices.
type TaxDocumentProvider interface {
	// Issue submits the document. A nil error with Success=false is a rejection.
	Issue(ctx context.Context, req domain.TaxDocumentRequest) (*domain.TaxDocumentResult, error)
}
