package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackio/fintrack_backend/internal/core/services"
	"github.com/fintrackio/fintrack_backend/internal/utils/ledger"
)

// replayEntryRepo performs a real running-balance replay over an in-memory
// entry set, mirroring what the pgsql repository does inside its account
// transaction. The mutex stands in for the account row lock.
type replayEntryRepo struct {
	portsrepo.EntryRepositoryFacade

	mu      sync.Mutex
	entries []domain.LedgerEntry
	calls   int
}

func (r *replayEntryRepo) RecalculateAccountBalance(_ context.Context, _ string) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	ledger.SortEntries(r.entries)
	return ledger.ComputeRunningBalances(r.entries)
}

func replayDate(offset int) time.Time {
	return time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func scenarioEntries() []domain.LedgerEntry {
	return []domain.LedgerEntry{
		{EntryID: "01", EntryType: domain.EntryInitial, Amount: decimal.NewFromInt(500), TransactionDate: replayDate(0)},
		{EntryID: "02", EntryType: domain.EntryExpense, Amount: decimal.NewFromInt(120), TransactionDate: replayDate(1)},
		{EntryID: "03", EntryType: domain.EntryIncome, Amount: decimal.NewFromInt(50), TransactionDate: replayDate(2)},
	}
}

func TestRecalculateAccount_Idempotent(t *testing.T) {
	repo := &replayEntryRepo{entries: scenarioEntries()}
	svc := services.NewBalanceService(repo)

	first, err := svc.RecalculateAccount(context.Background(), "acc-1")
	require.NoError(t, err)
	firstSeq := []decimal.Decimal{
		repo.entries[0].RunningBalance,
		repo.entries[1].RunningBalance,
		repo.entries[2].RunningBalance,
	}

	second, err := svc.RecalculateAccount(context.Background(), "acc-1")
	require.NoError(t, err)

	assert.True(t, first.Equal(decimal.NewFromInt(430)))
	assert.True(t, first.Equal(second))
	for i, want := range firstSeq {
		assert.True(t, want.Equal(repo.entries[i].RunningBalance))
	}
}

func TestRecalculateAccount_ConcurrentRunsConverge(t *testing.T) {
	const n = 16

	repo := &replayEntryRepo{entries: scenarioEntries()}
	svc := services.NewBalanceService(repo)

	results := make([]decimal.Decimal, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.RecalculateAccount(context.Background(), "acc-1")
		}(i)
	}
	wg.Wait()

	want := decimal.NewFromInt(430)
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.True(t, results[i].Equal(want), "run %d diverged: %s", i, results[i])
	}
	assert.Equal(t, n, repo.calls)
	assert.True(t, repo.entries[len(repo.entries)-1].RunningBalance.Equal(want))
}
