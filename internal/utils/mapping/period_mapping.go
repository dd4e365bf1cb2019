package mapping

import (
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/models"
)

// ToModelPeriod converts a domain AccountingPeriod to a model AccountingPeriod
func ToModelPeriod(d domain.AccountingPeriod) models.AccountingPeriod {
	return models.AccountingPeriod{
		PeriodID:    d.PeriodID,
		TenantID:    d.TenantID,
		Year:        d.Year,
		Month:       d.Month,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Status:      string(d.Status),
		ClosedBy:    toNullString(d.ClosedBy),
		ClosedAt:    toNullTime(d.ClosedAt),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPeriod converts a model AccountingPeriod to a domain AccountingPeriod
func ToDomainPeriod(m models.AccountingPeriod) domain.AccountingPeriod {
	return domain.AccountingPeriod{
		PeriodID:    m.PeriodID,
		TenantID:    m.TenantID,
		Year:        m.Year,
		Month:       m.Month,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Status:      domain.PeriodStatus(m.Status),
		ClosedBy:    m.ClosedBy.String,
		ClosedAt:    fromNullTime(m.ClosedAt),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
