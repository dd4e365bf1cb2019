package domain

import (
	"strconv"
	"strings"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Cost      AccountType = "COST"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Cost, Expense:
		return true
	}
	return false
}

// AccountNature is the side on which an account normally increases.
type AccountNature string

const (
	NatureDebit  AccountNature = "DEBIT"
	NatureCredit AccountNature = "CREDIT"
)

// IsValid reports whether n is DEBIT or CREDIT.
func (n AccountNature) IsValid() bool {
	return n == NatureDebit || n == NatureCredit
}

// DefaultNature returns the conventional nature for an account type.
func (t AccountType) DefaultNature() AccountNature {
	switch t {
	case Asset, Cost, Expense:
		return NatureDebit
	default:
		return NatureCredit
	}
}

// Account is a node in a tenant-scoped chart of accounts.
type Account struct {
	AccountID       string        `json:"accountID"`
	TenantID        string        `json:"tenantID"`
	Code            string        `json:"code"` // dot-segmented, e.g. 1.1.02.001
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	AccountType     AccountType   `json:"accountType"`
	Nature          AccountNature `json:"nature"`
	Level           int           `json:"level"`
	ParentAccountID string        `json:"parentAccountID"` // empty for roots
	AcceptsEntries  bool          `json:"acceptsEntries"`
	IsSystem        bool          `json:"isSystem"`
	IsActive        bool          `json:"isActive"`
	TaxCode         string        `json:"taxCode"`
	AuditFields
}

// IsPostable reports whether journal lines may reference the account.
func (a Account) IsPostable() bool {
	return a.AcceptsEntries && a.IsActive
}

// CodeSegments splits an account code into its dot-separated segments.
func CodeSegments(code string) []string {
	if code == "" {
		return nil
	}
	return strings.Split(code, ".")
}

// CodeLevel returns the depth implied by an account code.
func CodeLevel(code string) int {
	return len(CodeSegments(code))
}

// ParentCode returns the code of the immediate parent implied by code, or "" for a root code.
func ParentCode(code string) string {
	idx := strings.LastIndex(code, ".")
	if idx < 0 {
		return ""
	}
	return code[:idx]
}

// CompareCodes orders account codes segment by segment, numerically where both segments
// are numbers, so that 1.2 sorts before 1.10 and a parent before its children.
func CompareCodes(a, b string) int {
	as, bs := CodeSegments(a), CodeSegments(b)
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] == bs[i] {
			continue
		}
		an, aErr := strconv.Atoi(as[i])
		bn, bErr := strconv.Atoi(bs[i])
		if aErr == nil && bErr == nil && an != bn {
			if an < bn {
				return -1
			}
			return 1
		}
		return strings.Compare(as[i], bs[i])
	}
	return len(as) - len(bs)
}

// AccountNode is an account with its children, used to render the chart as a forest.
type AccountNode struct {
	Account
	Children []*AccountNode `json:"children"`
}
