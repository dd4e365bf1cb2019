package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/utils/validation"
	"github.com/google/uuid"
)

// accountPlanService implements the AccountPlanSvcFacade interface
type accountPlanService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	txManager   portsrepo.TransactionManager
}

// AccountPlanOption is a functional option for configuring the account plan service
type AccountPlanOption func(*accountPlanService)

// WithAccountPlanTransactions runs multi-row writes such as seeding inside one transaction.
func WithAccountPlanTransactions(tm portsrepo.TransactionManager) AccountPlanOption {
	return func(s *accountPlanService) {
		if tm != nil {
			s.txManager = tm
		}
	}
}

// NewAccountPlanService creates a new account plan service with the provided options
func NewAccountPlanService(repo portsrepo.AccountRepositoryFacade, options ...AccountPlanOption) portssvc.AccountPlanSvcFacade {
	svc := &accountPlanService{
		accountRepo: repo,
		txManager:   noTransactions{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountPlanService implements the AccountPlanSvcFacade interface
var _ portssvc.AccountPlanSvcFacade = (*accountPlanService)(nil)

func (s *accountPlanService) GetAccountPlan(ctx context.Context, tenantID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("tenant_id", tenantID))
		return nil, err
	}
	sort.SliceStable(accounts, func(i, j int) bool { return domain.CompareCodes(accounts[i].Code, accounts[j].Code) < 0 })
	return accounts, nil
}

func (s *accountPlanService) GetAccountTree(ctx context.Context, tenantID string) ([]*domain.AccountNode, error) {
	accounts, err := s.GetAccountPlan(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return BuildAccountTree(accounts), nil
}

// BuildAccountTree arranges a flat chart into a forest. Nodes whose parent does not resolve,
// or resolves to an account that is not exactly one level up, become roots.
func BuildAccountTree(accounts []domain.Account) []*domain.AccountNode {
	nodes := make(map[string]*domain.AccountNode, len(accounts))
	for _, acc := range accounts {
		nodes[acc.AccountID] = &domain.AccountNode{Account: acc, Children: []*domain.AccountNode{}}
	}

	roots := make([]*domain.AccountNode, 0)
	for _, acc := range accounts {
		node := nodes[acc.AccountID]
		parent, ok := nodes[acc.ParentAccountID]
		if acc.ParentAccountID == "" || !ok || parent.Level != acc.Level-1 {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots
}

func (s *accountPlanService) GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

func (s *accountPlanService) ResolveAccountCodes(ctx context.Context, tenantID string, codes []string) (map[string]domain.Account, error) {
	found, err := s.accountRepo.FindAccountsByCodes(ctx, tenantID, codes)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve account codes", slog.String("tenant_id", tenantID))
		return nil, err
	}
	var missing []string
	for _, code := range codes {
		if _, ok := found[code]; !ok {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: account code(s) not in the plan: %s", apperrors.ErrNotFound, strings.Join(missing, ", "))
	}
	return found, nil
}

func (s *accountPlanService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, actorID string) (*domain.Account, error) {
	account, err := s.newAccount(ctx, tenantID, req, actorID)
	if err != nil {
		s.LogWarn(ctx, err, "Account rejected", slog.String("code", req.Code))
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, *account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			err = fmt.Errorf("%w: account code %s", apperrors.ErrAlreadyExists, account.Code)
		}
		s.LogFailure(ctx, err, "Failed to save account", slog.String("code", account.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("code", account.Code))
	return account, nil
}

func (s *accountPlanService) newAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, actorID string) (*domain.Account, error) {
	if !validation.IsAccountCode(req.Code) || domain.CodeLevel(req.Code) != req.Level {
		return nil, fmt.Errorf("%w: code %q is not well-formed for level %d", apperrors.ErrValidation, req.Code, req.Level)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}
	nature := req.Nature
	if nature == "" {
		nature = req.AccountType.DefaultNature()
	}
	if !nature.IsValid() {
		return nil, fmt.Errorf("%w: unknown account nature %q", apperrors.ErrValidation, nature)
	}

	parentID := ""
	if req.ParentAccountID != nil {
		parentID = *req.ParentAccountID
	}
	if req.Level == 1 && parentID != "" {
		return nil, fmt.Errorf("%w: level 1 accounts cannot have a parent", apperrors.ErrValidation)
	}
	if req.Level > 1 {
		if parentID == "" {
			return nil, fmt.Errorf("%w: level %d accounts need a parent", apperrors.ErrValidation, req.Level)
		}
		parent, err := s.GetAccountByID(ctx, tenantID, parentID)
		if err != nil {
			return nil, err
		}
		if parent.Level != req.Level-1 {
			return nil, fmt.Errorf("%w: parent %s is level %d, expected %d", apperrors.ErrValidation, parent.Code, parent.Level, req.Level-1)
		}
		if domain.ParentCode(req.Code) != parent.Code {
			return nil, fmt.Errorf("%w: code %s is not under parent %s", apperrors.ErrValidation, req.Code, parent.Code)
		}
		if parent.AcceptsEntries {
			return nil, fmt.Errorf("%w: parent %s accepts entries and cannot have children", apperrors.ErrValidation, parent.Code)
		}
	}

	now := time.Now().UTC()
	return &domain.Account{
		AccountID:       uuid.NewString(),
		TenantID:        tenantID,
		Code:            req.Code,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		AccountType:     req.AccountType,
		Nature:          nature,
		Level:           req.Level,
		ParentAccountID: parentID,
		AcceptsEntries:  req.AcceptsEntries,
		IsSystem:        false,
		IsActive:        true,
		TaxCode:         req.TaxCode,
		AuditFields:     domain.NewAuditFields(actorID, now),
	}, nil
}

func (s *accountPlanService) UpdateAccount(ctx context.Context, tenantID, accountID string, req dto.UpdateAccountRequest, actorID string) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
		}
		account.Name = name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}

	// System accounts are structurally frozen; other fields are dropped without error.
	if !account.IsSystem {
		if req.IsActive != nil {
			account.IsActive = *req.IsActive
		}
		if req.AcceptsEntries != nil {
			if *req.AcceptsEntries && !account.AcceptsEntries {
				children, err := s.accountRepo.CountChildren(ctx, tenantID, accountID)
				if err != nil {
					s.LogError(ctx, err, "Failed to count child accounts", slog.String("account_id", accountID))
					return nil, err
				}
				if children > 0 {
					err := fmt.Errorf("%w: account %s has %d child account(s) and cannot accept entries", apperrors.ErrValidation, account.Code, children)
					s.LogWarn(ctx, err, "Account update rejected", slog.String("account_id", accountID))
					return nil, err
				}
			}
			account.AcceptsEntries = *req.AcceptsEntries
		}
	} else if req.IsActive != nil || req.AcceptsEntries != nil {
		s.LogDebug(ctx, "Ignoring structural fields on system account", slog.String("code", account.Code))
	}

	account.Touch(actorID, time.Now().UTC())
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID), slog.String("code", account.Code))
	return account, nil
}

func (s *accountPlanService) SeedAccountPlan(ctx context.Context, tenantID, actorID string) (int, error) {
	var created int
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.accountRepo.CountSystemAccounts(ctx, tenantID)
		if err != nil {
			return err
		}
		if existing > 0 {
			return fmt.Errorf("%w: tenant %s has %d system account(s)", apperrors.ErrAlreadySeeded, tenantID, existing)
		}

		accounts, err := buildSeedAccounts(tenantID, actorID, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := s.accountRepo.SaveAccounts(ctx, accounts); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return fmt.Errorf("%w: %v", apperrors.ErrAlreadySeeded, err)
			}
			return err
		}
		created = len(accounts)
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Account plan seed failed", slog.String("tenant_id", tenantID))
		return 0, err
	}

	s.LogInfo(ctx, "Account plan seeded", slog.String("tenant_id", tenantID), slog.Int("accounts", created))
	return created, nil
}

// buildSeedAccounts walks the template in declaration order, resolving each parent code
// against the ids assigned so far.
func buildSeedAccounts(tenantID, actorID string, now time.Time) ([]domain.Account, error) {
	idByCode := make(map[string]string, len(defaultPlanTemplate))
	accounts := make([]domain.Account, 0, len(defaultPlanTemplate))
	for _, row := range defaultPlanTemplate {
		parentID := ""
		if row.ParentCode != "" {
			var ok bool
			parentID, ok = idByCode[row.ParentCode]
			if !ok {
				return nil, fmt.Errorf("plan template: parent %s of %s is declared later or missing", row.ParentCode, row.Code)
			}
		}
		nature := row.Nature
		if nature == "" {
			nature = row.Type.DefaultNature()
		}
		id := uuid.NewString()
		idByCode[row.Code] = id
		accounts = append(accounts, domain.Account{
			AccountID:       id,
			TenantID:        tenantID,
			Code:            row.Code,
			Name:            row.Name,
			AccountType:     row.Type,
			Nature:          nature,
			Level:           domain.CodeLevel(row.Code),
			ParentAccountID: parentID,
			AcceptsEntries:  row.AcceptsEntries,
			IsSystem:        true,
			IsActive:        true,
			TaxCode:         row.TaxCode,
			AuditFields:     domain.NewAuditFields(actorID, now),
		})
	}
	return accounts, nil
}
