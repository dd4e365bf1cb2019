package mapping

import (
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		TenantID:        d.TenantID,
		Code:            d.Code,
		Name:            d.Name,
		Description:     d.Description,
		AccountType:     string(d.AccountType),
		Nature:          string(d.Nature),
		Level:           d.Level,
		ParentAccountID: toNullString(d.ParentAccountID),
		AcceptsEntries:  d.AcceptsEntries,
		IsSystem:        d.IsSystem,
		IsActive:        d.IsActive,
		TaxCode:         d.TaxCode,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		TenantID:        m.TenantID,
		Code:            m.Code,
		Name:            m.Name,
		Description:     m.Description,
		AccountType:     domain.AccountType(m.AccountType),
		Nature:          domain.AccountNature(m.Nature),
		Level:           m.Level,
		ParentAccountID: m.ParentAccountID.String,
		AcceptsEntries:  m.AcceptsEntries,
		IsSystem:        m.IsSystem,
		IsActive:        m.IsActive,
		TaxCode:         m.TaxCode,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
