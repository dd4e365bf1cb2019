package domain

import "time"

// AuditFields records who created and last changed a ledger record, and when.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// NewAuditFields stamps a record created by actorID at at.
func NewAuditFields(actorID string, at time.Time) AuditFields {
	return AuditFields{CreatedAt: at, CreatedBy: actorID, LastUpdatedAt: at, LastUpdatedBy: actorID}
}

// Touch records a change by actorID.
func (a *AuditFields) Touch(actorID string, at time.Time) {
	a.LastUpdatedAt = at
	a.LastUpdatedBy = actorID
}
