package services

import (
	"github.com/SscSPs/general_ledger/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// provider may be nil when no tax document provider is configured.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, provider providers.TaxDocumentProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.AccountPlan = NewAccountPlanService(repos.AccountRepo, WithAccountPlanTransactions(repos.TxManager))
	container.Period = NewPeriodService(repos.PeriodRepo,
		WithPeriodTransactions(repos.TxManager),
		WithRejectCloseWithDrafts(cfg.RejectCloseWithDrafts),
	)

	// Journal depends on the period register for the open-period gate
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo, container.Period, repos.TxManager)

	container.AutoEntry = NewAutoEntryBuilder(container.AccountPlan, cfg.AccountRoles)
	container.Ledger = NewLedgerService(container.AccountPlan, repos.LedgerRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Events = NewBusinessEventService(container.AutoEntry, container.Journal, provider)

	return container
}
