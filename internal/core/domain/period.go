package domain

import (
	"fmt"
	"time"
)

// PeriodStatus indicates whether an accounting period accepts postings.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// AccountingPeriod is a (year, month) window that entries are dated into.
type AccountingPeriod struct {
	PeriodID  string       `json:"periodID"`
	TenantID  string       `json:"tenantID"`
	Year      int          `json:"year"`
	Month     int          `json:"month"`
	StartDate time.Time    `json:"startDate"`
	EndDate   time.Time    `json:"endDate"`
	Status    PeriodStatus `json:"status"`
	ClosedBy  string       `json:"closedBy,omitempty"`
	ClosedAt  *time.Time   `json:"closedAt,omitempty"`
	AuditFields
}

// IsOpen reports whether the period accepts new entries.
func (p AccountingPeriod) IsOpen() bool {
	return p.Status == PeriodOpen
}

// Label renders the period as YYYY-MM.
func (p AccountingPeriod) Label() string {
	return PeriodLabel(p.Year, p.Month)
}

// PeriodLabel renders a year and month as YYYY-MM.
func PeriodLabel(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// PeriodBounds returns the first and last calendar day of the given month in UTC.
func PeriodBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// YearMonthOf derives the (year, month) an entry date belongs to.
func YearMonthOf(date time.Time) (int, int) {
	return date.Year(), int(date.Month())
}
