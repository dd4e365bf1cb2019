package dto

import (
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// OpenPeriodRequest names the month to open.
type OpenPeriodRequest struct {
	Year  int `json:"year" binding:"required,min=1900,max=9999"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

// ListPeriodsParams defines query parameters for listing periods.
type ListPeriodsParams struct {
	Year *int `form:"year" binding:"omitempty,min=1900,max=9999"`
}

// PeriodResponse defines the data returned for an accounting period.
type PeriodResponse struct {
	PeriodID  string              `json:"periodID"`
	Label     string              `json:"label"`
	Year      int                 `json:"year"`
	Month     int                 `json:"month"`
	StartDate string              `json:"startDate"`
	EndDate   string              `json:"endDate"`
	Status    domain.PeriodStatus `json:"status"`
	ClosedBy  string              `json:"closedBy,omitempty"`
	ClosedAt  *time.Time          `json:"closedAt,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	CreatedBy string              `json:"createdBy"`
}

// ToPeriodResponse converts a domain.AccountingPeriod to PeriodResponse DTO
func ToPeriodResponse(p *domain.AccountingPeriod) PeriodResponse {
	return PeriodResponse{
		PeriodID:  p.PeriodID,
		Label:     p.Label(),
		Year:      p.Year,
		Month:     p.Month,
		StartDate: FormatDate(p.StartDate),
		EndDate:   FormatDate(p.EndDate),
		Status:    p.Status,
		ClosedBy:  p.ClosedBy,
		ClosedAt:  p.ClosedAt,
		CreatedAt: p.CreatedAt,
		CreatedBy: p.CreatedBy,
	}
}

// ToListPeriodResponse converts a slice of periods.
func ToListPeriodResponse(periods []domain.AccountingPeriod) []PeriodResponse {
	res := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		res[i] = ToPeriodResponse(&p)
	}
	return res
}
