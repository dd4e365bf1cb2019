package services

import (
	"context"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/dto"
)

// AccountPlanReaderSvc defines read operations on a tenant's chart of accounts
type AccountPlanReaderSvc interface {
	// GetAccountPlan returns the flat chart ordered by code.
	GetAccountPlan(ctx context.Context, tenantID string) ([]domain.Account, error)

	// GetAccountTree returns the chart as a forest of parent/child nodes.
	GetAccountTree(ctx context.Context, tenantID string) ([]*domain.AccountNode, error)

	// GetAccountByID retrieves a specific account of the tenant.
	GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error)

	// ResolveAccountCodes maps each code to the tenant's account, failing with NotFound
	// if any code is missing.
	ResolveAccountCodes(ctx context.Context, tenantID string, codes []string) (map[string]domain.Account, error)
}

// AccountPlanWriterSvc defines write operations on a tenant's chart of accounts
type AccountPlanWriterSvc interface {
	// CreateAccount adds a non-system account after checking code, level and parent.
	CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, actorID string) (*domain.Account, error)

	// UpdateAccount applies the whitelisted fields of req. System accounts only take name and description.
	UpdateAccount(ctx context.Context, tenantID, accountID string, req dto.UpdateAccountRequest, actorID string) (*domain.Account, error)

	// SeedAccountPlan installs the default chart once per tenant and returns the number of accounts created.
	SeedAccountPlan(ctx context.Context, tenantID, actorID string) (int, error)
}

// AccountPlanSvcFacade combines all account-plan service interfaces
type AccountPlanSvcFacade interface {
	AccountPlanReaderSvc
	AccountPlanWriterSvc
}
