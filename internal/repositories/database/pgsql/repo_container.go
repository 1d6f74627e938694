package pgsql

import (
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newPgxAccountRepository(dbPool),
		EntryRepo:        newPgxEntryRepository(dbPool),
		ObligationRepo:   newPgxObligationRepository(dbPool),
		CategoryRepo:     newPgxCategoryRepository(dbPool),
		ContactRepo:      newPgxContactRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		BudgetRepo:       newPgxBudgetRepository(dbPool),
	}
}
