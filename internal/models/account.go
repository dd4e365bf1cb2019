package models

import "database/sql"

// Account is a row of the accounts table.
// ParentAccountID is NULL for level-1 accounts.
type Account struct {
	AccountID       string         `db:"account_id"`
	TenantID        string         `db:"tenant_id"`
	Code            string         `db:"code"`
	Name            string         `db:"name"`
	Description     string         `db:"description"`
	AccountType     string         `db:"account_type"`
	Nature          string         `db:"nature"`
	Level           int            `db:"level"`
	ParentAccountID sql.NullString `db:"parent_account_id"`
	AcceptsEntries  bool           `db:"accepts_entries"`
	IsSystem        bool           `db:"is_system"`
	IsActive        bool           `db:"is_active"`
	TaxCode         string         `db:"tax_code"`
	AuditFields
}
