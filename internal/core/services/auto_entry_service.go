package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/utils/accounting"
	"github.com/SscSPs/general_ledger/internal/utils/validation"
	"github.com/shopspring/decimal"
)

// autoEntryBuilder derives journal entry inputs from business events. Its output is not
// trusted: callers pass it through CreateManualEntry, which validates it again.
type autoEntryBuilder struct {
	BaseService
	accounts portssvc.AccountPlanReaderSvc
	roles    domain.AccountRoleTable
}

// NewAutoEntryBuilder creates a builder resolving well-known roles through roles.
func NewAutoEntryBuilder(accounts portssvc.AccountPlanReaderSvc, roles domain.AccountRoleTable) portssvc.AutoEntryBuilderSvc {
	return &autoEntryBuilder{accounts: accounts, roles: roles}
}

var _ portssvc.AutoEntryBuilderSvc = (*autoEntryBuilder)(nil)

type roleName string

const (
	roleReceivable roleName = "accounts receivable"
	rolePayable    roleName = "accounts payable"
	roleInputVAT   roleName = "input VAT"
	roleOutputVAT  roleName = "output VAT"
	roleRevenue    roleName = "service revenue"
)

func roleCode(roles domain.AccountRoles, role roleName) string {
	switch role {
	case roleReceivable:
		return roles.AccountsReceivable
	case rolePayable:
		return roles.AccountsPayable
	case roleInputVAT:
		return roles.InputVAT
	case roleOutputVAT:
		return roles.OutputVAT
	case roleRevenue:
		return roles.ServiceRevenue
	}
	return ""
}

// resolveRoles maps each role to the tenant's account id.
func (b *autoEntryBuilder) resolveRoles(ctx context.Context, tenantID string, wanted ...roleName) (map[roleName]string, error) {
	roles := b.roles.For(tenantID)
	codes := make([]string, 0, len(wanted))
	for _, role := range wanted {
		code := roleCode(roles, role)
		if code == "" {
			return nil, fmt.Errorf("%w: no account code configured for %s", apperrors.ErrNotFound, role)
		}
		codes = append(codes, code)
	}

	accounts, err := b.accounts.ResolveAccountCodes(ctx, tenantID, codes)
	if err != nil {
		b.LogFailure(ctx, err, "Well-known accounts not resolved", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("well-known account not seeded: %w", err)
	}

	ids := make(map[roleName]string, len(wanted))
	for i, role := range wanted {
		ids[role] = accounts[codes[i]].AccountID
	}
	return ids, nil
}

// invoiceTotal returns net+tax when total is unset. A given total must match net+tax at
// ledger precision or the entry could not balance.
func invoiceTotal(total, net, tax decimal.Decimal) (decimal.Decimal, error) {
	sum := net.Add(tax)
	if total.IsZero() {
		return sum, nil
	}
	if !total.Round(accounting.AmountPlaces).Equal(sum.Round(accounting.AmountPlaces)) {
		return decimal.Zero, fmt.Errorf("%w: total amount %s does not equal net %s plus tax %s",
			apperrors.ErrValidation, total.String(), net.String(), tax.String())
	}
	return total, nil
}

func checkAmounts(named map[string]decimal.Decimal) error {
	for name, v := range named {
		if v.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative", apperrors.ErrValidation, name)
		}
	}
	return nil
}

func describe(given, fallback string) string {
	if given != "" {
		return given
	}
	return fallback
}

func (b *autoEntryBuilder) BuildInvoiceIssued(ctx context.Context, tenantID string, event domain.InvoiceIssuedEvent) (domain.JournalEntryInput, error) {
	if err := validation.Struct(event); err != nil {
		return domain.JournalEntryInput{}, err
	}
	if err := checkAmounts(map[string]decimal.Decimal{"net amount": event.NetAmount, "tax amount": event.TaxAmount, "total amount": event.TotalAmount}); err != nil {
		return domain.JournalEntryInput{}, err
	}

	wanted := []roleName{roleReceivable, roleRevenue}
	if event.TaxAmount.IsPositive() {
		wanted = append(wanted, roleOutputVAT)
	}
	ids, err := b.resolveRoles(ctx, tenantID, wanted...)
	if err != nil {
		return domain.JournalEntryInput{}, err
	}

	total, err := invoiceTotal(event.TotalAmount, event.NetAmount, event.TaxAmount)
	if err != nil {
		return domain.JournalEntryInput{}, err
	}
	lines := []domain.JournalLineInput{
		{AccountID: ids[roleReceivable], Description: "Cliente", Debit: total, Credit: decimal.Zero, ThirdPartyID: event.CustomerID, ThirdPartyType: partyType(event.CustomerID, domain.ThirdPartyCustomer)},
		{AccountID: ids[roleRevenue], Description: "Venta neta", Debit: decimal.Zero, Credit: event.NetAmount},
	}
	if event.TaxAmount.IsPositive() {
		lines = append(lines, domain.JournalLineInput{AccountID: ids[roleOutputVAT], Description: "IVA débito fiscal", Debit: decimal.Zero, Credit: event.TaxAmount})
	}

	return domain.JournalEntryInput{
		Date:        event.Date,
		Description: describe(event.Description, fmt.Sprintf("Factura emitida folio %s", event.Folio)),
		Reference:   event.Folio,
		SourceType:  domain.SourceInvoiceIssued,
		SourceID:    event.DocumentID,
		Lines:       lines,
	}, nil
}

func (b *autoEntryBuilder) BuildInvoiceReceived(ctx context.Context, tenantID string, event domain.InvoiceReceivedEvent) (domain.JournalEntryInput, error) {
	if err := validation.Struct(event); err != nil {
		return domain.JournalEntryInput{}, err
	}
	if err := checkAmounts(map[string]decimal.Decimal{"net amount": event.NetAmount, "tax amount": event.TaxAmount, "total amount": event.TotalAmount}); err != nil {
		return domain.JournalEntryInput{}, err
	}

	wanted := []roleName{rolePayable}
	if event.TaxAmount.IsPositive() {
		wanted = append(wanted, roleInputVAT)
	}
	ids, err := b.resolveRoles(ctx, tenantID, wanted...)
	if err != nil {
		return domain.JournalEntryInput{}, err
	}

	total, err := invoiceTotal(event.TotalAmount, event.NetAmount, event.TaxAmount)
	if err != nil {
		return domain.JournalEntryInput{}, err
	}
	lines := []domain.JournalLineInput{
		{AccountID: event.ExpenseAccountID, Description: "Gasto neto", Debit: event.NetAmount, Credit: decimal.Zero},
	}
	if event.TaxAmount.IsPositive() {
		lines = append(lines, domain.JournalLineInput{AccountID: ids[roleInputVAT], Description: "IVA crédito fiscal", Debit: event.TaxAmount, Credit: decimal.Zero})
	}
	lines = append(lines, domain.JournalLineInput{
		AccountID: ids[rolePayable], Description: "Proveedor", Debit: decimal.Zero, Credit: total,
		ThirdPartyID: event.SupplierID, ThirdPartyType: partyType(event.SupplierID, domain.ThirdPartySupplier),
	})

	return domain.JournalEntryInput{
		Date:        event.Date,
		Description: describe(event.Description, fmt.Sprintf("Factura recibida folio %s", event.Folio)),
		Reference:   event.Folio,
		SourceType:  domain.SourceInvoiceReceived,
		SourceID:    event.DocumentID,
		Lines:       lines,
	}, nil
}

func (b *autoEntryBuilder) BuildPaymentReceived(ctx context.Context, tenantID string, event domain.PaymentReceivedEvent) (domain.JournalEntryInput, error) {
	if err := validation.Struct(event); err != nil {
		return domain.JournalEntryInput{}, err
	}
	if err := checkAmounts(map[string]decimal.Decimal{"amount": event.Amount}); err != nil {
		return domain.JournalEntryInput{}, err
	}
	ids, err := b.resolveRoles(ctx, tenantID, roleReceivable)
	if err != nil {
		return domain.JournalEntryInput{}, err
	}

	return domain.JournalEntryInput{
		Date:        event.Date,
		Description: describe(event.Description, "Pago recibido de cliente"),
		Reference:   event.PaymentID,
		SourceType:  domain.SourcePayment,
		SourceID:    event.PaymentID,
		Lines: []domain.JournalLineInput{
			{AccountID: event.BankAccountID, Description: "Depósito", Debit: event.Amount, Credit: decimal.Zero},
			{AccountID: ids[roleReceivable], Description: "Cliente", Debit: decimal.Zero, Credit: event.Amount, ThirdPartyID: event.CustomerID, ThirdPartyType: partyType(event.CustomerID, domain.ThirdPartyCustomer)},
		},
	}, nil
}

func (b *autoEntryBuilder) BuildPaymentMade(ctx context.Context, tenantID string, event domain.PaymentMadeEvent) (domain.JournalEntryInput, error) {
	if err := validation.Struct(event); err != nil {
		return domain.JournalEntryInput{}, err
	}
	if err := checkAmounts(map[string]decimal.Decimal{"amount": event.Amount}); err != nil {
		return domain.JournalEntryInput{}, err
	}
	ids, err := b.resolveRoles(ctx, tenantID, rolePayable)
	if err != nil {
		return domain.JournalEntryInput{}, err
	}

	return domain.JournalEntryInput{
		Date:        event.Date,
		Description: describe(event.Description, "Pago a proveedor"),
		Reference:   event.PaymentID,
		SourceType:  domain.SourcePayment,
		SourceID:    event.PaymentID,
		Lines: []domain.JournalLineInput{
			{AccountID: ids[rolePayable], Description: "Proveedor", Debit: event.Amount, Credit: decimal.Zero, ThirdPartyID: event.SupplierID, ThirdPartyType: partyType(event.SupplierID, domain.ThirdPartySupplier)},
			{AccountID: event.BankAccountID, Description: "Giro", Debit: decimal.Zero, Credit: event.Amount},
		},
	}, nil
}

func partyType(id string, t domain.ThirdPartyType) domain.ThirdPartyType {
	if id == "" {
		return ""
	}
	return t
}
