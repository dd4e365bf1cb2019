package dto

import (
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code            string               `json:"code" binding:"required,account_code"`
	Name            string               `json:"name" binding:"required,max=200"`
	Description     string               `json:"description"`
	AccountType     domain.AccountType   `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE COST EXPENSE"`
	Nature          domain.AccountNature `json:"nature" binding:"omitempty,oneof=DEBIT CREDIT"` // defaults from accountType
	Level           int                  `json:"level" binding:"required,min=1,max=10"`
	ParentAccountID *string              `json:"parentAccountID"` // required unless level is 1
	AcceptsEntries  bool                 `json:"acceptsEntries"`
	TaxCode         string               `json:"taxCode"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description    *string `json:"description"`
	IsActive       *bool   `json:"isActive"`
	AcceptsEntries *bool   `json:"acceptsEntries"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID       string               `json:"accountID"`
	Code            string               `json:"code"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	AccountType     domain.AccountType   `json:"accountType"`
	Nature          domain.AccountNature `json:"nature"`
	Level           int                  `json:"level"`
	ParentAccountID string               `json:"parentAccountID"` // Note: Empty string for roots
	AcceptsEntries  bool                 `json:"acceptsEntries"`
	IsSystem        bool                 `json:"isSystem"`
	IsActive        bool                 `json:"isActive"`
	TaxCode         string               `json:"taxCode,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	CreatedBy       string               `json:"createdBy"`
	LastUpdatedAt   time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy   string               `json:"lastUpdatedBy"`
}

// AccountTreeNodeResponse is an account with its children.
type AccountTreeNodeResponse struct {
	AccountResponse
	Children []AccountTreeNodeResponse `json:"children"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// SeedAccountPlanResponse reports how many accounts the seed created.
type SeedAccountPlanResponse struct {
	Created int `json:"created"`
}

// ResolveAccountCodesRequest asks for the account ids behind a set of plan codes.
type ResolveAccountCodesRequest struct {
	Codes []string `json:"codes" binding:"required,min=1,dive,account_code"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Code:            acc.Code,
		Name:            acc.Name,
		Description:     acc.Description,
		AccountType:     acc.AccountType,
		Nature:          acc.Nature,
		Level:           acc.Level,
		ParentAccountID: acc.ParentAccountID,
		AcceptsEntries:  acc.AcceptsEntries,
		IsSystem:        acc.IsSystem,
		IsActive:        acc.IsActive,
		TaxCode:         acc.TaxCode,
		CreatedAt:       acc.CreatedAt,
		CreatedBy:       acc.CreatedBy,
		LastUpdatedAt:   acc.LastUpdatedAt,
		LastUpdatedBy:   acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ToAccountTreeResponse converts a forest of account nodes.
func ToAccountTreeResponse(nodes []*domain.AccountNode) []AccountTreeNodeResponse {
	res := make([]AccountTreeNodeResponse, len(nodes))
	for i, n := range nodes {
		res[i] = AccountTreeNodeResponse{
			AccountResponse: ToAccountResponse(&n.Account),
			Children:        ToAccountTreeResponse(n.Children),
		}
	}
	return res
}
