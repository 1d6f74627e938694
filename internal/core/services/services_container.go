package services

import (
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The recalc dispatcher is injected by the caller because its worker pool
// wraps the balance service built here; main wires the two together.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, dispatcher portssvc.RecalcDispatcher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency resolution has no service dependencies; most writers need it.
	container.Currency = NewCurrencyService(repos.ExchangeRateRepo, cfg.BaseCurrency)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, cfg.BaseCurrency)

	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Contact = NewContactService(repos.ContactRepo)

	container.Balance = NewBalanceService(repos.EntryRepo)

	container.Account = NewAccountService(repos.AccountRepo, repos.EntryRepo, container.Currency, dispatcher)
	container.Transaction = NewTransactionService(repos.EntryRepo, container.Account, container.Category, container.Currency, dispatcher)
	container.Obligation = NewObligationService(repos.ObligationRepo, container.Account, repos.ContactRepo, container.Currency, dispatcher)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.CategoryRepo)

	return container
}
