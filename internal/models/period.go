package models

import (
	"database/sql"
	"time"
)

// AccountingPeriod is a row of the accounting_periods table.
type AccountingPeriod struct {
	PeriodID  string         `db:"period_id"`
	TenantID  string         `db:"tenant_id"`
	Year      int            `db:"year"`
	Month     int            `db:"month"`
	StartDate time.Time      `db:"start_date"`
	EndDate   time.Time      `db:"end_date"`
	Status    string         `db:"status"`
	ClosedBy  sql.NullString `db:"closed_by"`
	ClosedAt  sql.NullTime   `db:"closed_at"`
	AuditFields
}
